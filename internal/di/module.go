package di

import (
	"go.uber.org/fx"

	"github.com/zepcart/marketplace/internal/adapter/live"
	"github.com/zepcart/marketplace/internal/adapter/push"
	"github.com/zepcart/marketplace/internal/app"
	"github.com/zepcart/marketplace/internal/config"
	"github.com/zepcart/marketplace/internal/logger"
	"github.com/zepcart/marketplace/internal/metrics"
	"github.com/zepcart/marketplace/internal/pkg/auth"
	"github.com/zepcart/marketplace/internal/server/http/router"
	"github.com/zepcart/marketplace/internal/storage/postgres"
	"github.com/zepcart/marketplace/internal/usecase"
	"github.com/zepcart/marketplace/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		push.Module,
		live.Module,
		usecase.Module,
		fx.Provide(
			func(c *live.Channel) usecase.LiveChannel { return c },
			func(c *live.Channel) app.VendorStream { return c },
			func(d *worker.NotificationDispatcher) usecase.Notifier { return d },
			func(s *postgres.Storage) router.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
