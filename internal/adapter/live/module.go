package live

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/zepcart/marketplace/internal/config"
)

// Module wires the live event channel, its broker and event log.
var Module = fx.Options(
	fx.Provide(
		newBroker,
		newEventLog,
		NewChannel,
	),
	fx.Invoke(registerLifecycle),
)

type brokerParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newBroker(p brokerParams) (Broker, error) {
	if p.Config.RedisAddr == "" {
		p.Logger.Info("live channel uses in-process broker")
		return NewMemoryBroker(p.Logger), nil
	}
	p.Logger.Info("live channel uses redis", slog.String("addr", p.Config.RedisAddr))
	return NewRedisBroker(p.Ctx, p.Config.RedisAddr, p.Logger)
}

func newEventLog(cfg *config.Config, logger *slog.Logger) EventLog {
	if len(cfg.KafkaBrokers) == 0 {
		return NopLog{}
	}
	logger.Info("event log enabled", slog.String("topic", cfg.KafkaTopic))
	return NewKafkaLog(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
}

func registerLifecycle(lc fx.Lifecycle, broker Broker, log EventLog) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logErr := log.Close(ctx)
			if err := broker.Close(); err != nil {
				return err
			}
			return logErr
		},
	})
}
