package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

func run(ctx context.Context, app *fx.App) error {
	if err := app.Err(); err != nil {
		return fmt.Errorf("build application: %w", err)
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start application: %w", err)
	}

	var sig fx.ShutdownSignal
	select {
	case <-ctx.Done():
	case sig = <-app.Wait():
	}

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("stop application: %w", err)
	}
	if sig.ExitCode != 0 {
		return fmt.Errorf("shutdown requested with exit code %d", sig.ExitCode)
	}
	return nil
}
