package push

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/zepcart/marketplace/internal/config"
)

// Module exposes the configured push Sender to fx graph.
var Module = fx.Provide(newSender)

type senderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newSender(p senderParams) (Sender, error) {
	switch {
	case p.Config.FirebaseCredentialsFile != "":
		p.Logger.Info("push delivery via firebase")
		return NewFCMSender(p.Ctx, p.Config.FirebaseCredentialsFile)
	case p.Config.PushGatewayURL != "":
		p.Logger.Info("push delivery via gateway", slog.String("url", p.Config.PushGatewayURL))
		return NewHTTPSender(p.Config.PushGatewayURL, p.Logger)
	default:
		p.Logger.Warn("push delivery disabled, notifications will be skipped")
		return NopSender{}, nil
	}
}
