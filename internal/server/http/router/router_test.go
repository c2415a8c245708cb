package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/zepcart/marketplace/internal/domain/model"
	"github.com/zepcart/marketplace/internal/metrics"
	"github.com/zepcart/marketplace/internal/server/http/handlers"
	testhelpers "github.com/zepcart/marketplace/internal/test"
)

type healthStub struct {
	err error
}

func (h healthStub) HealthCheck(context.Context) error { return h.err }

func newEngine(t *testing.T, facade testhelpers.MarketplaceFacadeStub, health HealthChecker) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(Params{Facade: facade, Logger: logger, Metrics: metrics.New(), Health: health})
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, target string, body []byte, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.MarketplaceFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			VendorOrdersFn: func(_ context.Context, actor model.Identity) ([]model.Order, error) {
				return []model.Order{{ID: "o-1", VendorID: "v-1", Status: model.OrderStatusPending}}, nil
			},
		},
	}
	engine := newEngine(t, facade, healthStub{})

	body, _ := json.Marshal(map[string]string{"mobile": "555", "password": "secret123"})
	if resp := serve(engine, http.MethodPost, "/api/auth/register", body, ""); resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}
	if resp := serve(engine, http.MethodPost, "/api/auth/login", body, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	cart := []byte(`{"userId":"c1","items":[{"productId":"p1","name":"Apple","quantity":1,"price":2}]}`)
	if resp := serve(engine, http.MethodPost, "/api/order/create", cart, ""); resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for create, got %d", resp.Code)
	}

	if resp := serve(engine, http.MethodGet, "/api/order/vendor", nil, ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for vendor orders without token, got %d", resp.Code)
	}
	resp := serve(engine, http.MethodGet, "/api/order/vendor", nil, "token")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"o-1"`) {
		t.Fatalf("unexpected vendor orders response %d %s", resp.Code, resp.Body.String())
	}

	if resp := serve(engine, http.MethodGet, "/api/order/customer/c1", nil, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for customer orders, got %d", resp.Code)
	}

	status := []byte(`{"status":"Accepted"}`)
	if resp := serve(engine, http.MethodPatch, "/api/order/o-1/status", status, ""); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for status update without token, got %d", resp.Code)
	}
	if resp := serve(engine, http.MethodPatch, "/api/order/o-1/status", status, "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for status update, got %d", resp.Code)
	}

	stock := []byte(`{"stockStatus":"In Stock"}`)
	if resp := serve(engine, http.MethodPatch, "/api/catalog/grocery/products/p1/status", stock, "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for stock update, got %d", resp.Code)
	}

	if resp := serve(engine, http.MethodGet, VendorStreamPath, nil, "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for stream, got %d", resp.Code)
	}

	if resp := serve(engine, http.MethodGet, "/healthz", nil, ""); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for healthz, got %d", resp.Code)
	}
	resp = serve(engine, http.MethodGet, "/metrics", nil, "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "marketplace_http_requests_total") {
		t.Fatalf("unexpected metrics response %d", resp.Code)
	}
}

func TestSetupRejectsUnknownFields(t *testing.T) {
	engine := newEngine(t, testhelpers.MarketplaceFacadeStub{}, nil)

	cart := []byte(`{"userId":"c1","items":[],"status":"Delivered"}`)
	if resp := serve(engine, http.MethodPost, "/api/order/create", cart, ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", resp.Code)
	}

	checkout := []byte(`{"userId":"c1","orderType":"grocery","items":[{"productId":"p1","quantity":1,"price":2}]}`)
	if resp := serve(engine, http.MethodPost, "/api/order/create", checkout, ""); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 for checkout with orderType, got %d", resp.Code)
	}
	if binding.EnableDecoderDisallowUnknownFields {
		t.Fatal("Setup must not change gin's global decoder settings")
	}
}

func TestHealthzReportsDatabaseFailure(t *testing.T) {
	engine := newEngine(t, testhelpers.MarketplaceFacadeStub{}, healthStub{err: errors.New("down")})
	if resp := serve(engine, http.MethodGet, "/healthz", nil, ""); resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

var _ handlers.MarketplaceFacade = (*testhelpers.MarketplaceFacadeStub)(nil)
