package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/transactify/transactify/app/controller"
	"github.com/transactify/transactify/app/entity"
	"github.com/transactify/transactify/app/provider"
	"github.com/transactify/transactify/app/service"
)

type serveManifests struct{}

func (s *serveManifests) Load() (*entity.ProjectManifest, error) {
	return &entity.ProjectManifest{Providers: map[string]entity.Credentials{}}, nil
}

type serveStore struct{}

func (s *serveStore) Record(_ context.Context, _ *entity.TransactionRecord) error {
	return nil
}

func newServeTestServer() *controller.PaymentController {
	svc := service.NewPaymentService(&serveManifests{}, provider.DefaultRegistry(), &serveStore{}, time.Second)
	return controller.NewPaymentController(svc)
}

func TestSetupHTTPServerLogsServiceName(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.StandardLogger()
	oldOut := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(oldOut) })

	e := setupHTTPServer(newServeTestServer(), "transactify-test")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	output := buf.String()
	if !strings.Contains(output, "http_request") {
		t.Fatalf("expected request log entry, got:\n%s", output)
	}
	if !strings.Contains(output, "transactify-test") {
		t.Fatalf("expected service name in request log, got:\n%s", output)
	}
}

func TestSetupHTTPServerAssignsRequestID(t *testing.T) {
	e := setupHTTPServer(newServeTestServer(), "transactify-test")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected generated request id header")
	}
}
