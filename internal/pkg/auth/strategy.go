package auth

import (
	"time"

	"github.com/zepcart/marketplace/internal/domain/model"
)

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(identity model.Identity) (string, error)
	ParseToken(token string) (model.Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
