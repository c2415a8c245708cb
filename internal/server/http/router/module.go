package router

import (
	"go.uber.org/fx"

	"github.com/zepcart/marketplace/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
// The stream handler is shared with the app so shutdown can end open streams.
var Module = fx.Provide(
	Setup,
	func(f handlers.MarketplaceFacade) *handlers.StreamHandler { return handlers.NewStreamHandler(f) },
)
