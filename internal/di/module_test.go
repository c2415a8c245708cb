package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/zepcart/marketplace/internal/adapter/push"
	"github.com/zepcart/marketplace/internal/app"
	"github.com/zepcart/marketplace/internal/config"
	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/domain/repository"
	"github.com/zepcart/marketplace/internal/storage/postgres"
	"github.com/zepcart/marketplace/internal/test"
	"github.com/zepcart/marketplace/internal/usecase"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Hour,
		NotifyWorkers:   1,
		NotifyQueueSize: 1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var (
		facade   *app.MarketplaceFacade
		engine   *gin.Engine
		notifier usecase.Notifier
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(test.NewUserRepositoryStub())),
			fx.Replace(repository.VendorRepository(test.NewVendorRepositoryStub())),
			fx.Replace(repository.CustomerRepository(test.NewCustomerRepositoryStub())),
			fx.Replace(repository.OrderRepository(&test.OrderRepositoryStub{})),
			fx.Replace([]repository.ProductCatalog{test.NewCatalogStub(model.BusinessTypeGrocery)}),
			fx.Replace(push.Sender(&test.SenderStub{})),
		),
		fx.Populate(&facade, &engine, &notifier),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || engine == nil || notifier == nil {
		t.Fatal("expected marketplace graph to be populated")
	}
}
