package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/transactify/transactify/app/entity"
	"github.com/transactify/transactify/app/provider"
	"github.com/transactify/transactify/app/service"
	"github.com/transactify/transactify/app/types"
)

type controllerManifests struct {
	manifest *entity.ProjectManifest
}

func (s *controllerManifests) Load() (*entity.ProjectManifest, error) {
	return s.manifest, nil
}

type controllerStore struct {
	records int
}

func (s *controllerStore) Record(_ context.Context, _ *entity.TransactionRecord) error {
	s.records++
	return nil
}

type controllerProvider struct {
	url string
}

func (p *controllerProvider) Name() string {
	return "stripe"
}

func (p *controllerProvider) BuildCharge(_ entity.Credentials, _ *provider.ChargeRequest, _ int64, _ entity.CallbackURLs) (*provider.RequestSpec, error) {
	return &provider.RequestSpec{
		Method: http.MethodPost,
		URL:    p.url,
		Header: http.Header{},
		Body:   []byte(`{}`),
	}, nil
}

func newController(upstreamURL string, store *controllerStore) *PaymentController {
	m := &entity.ProjectManifest{
		Providers: map[string]entity.Credentials{
			"stripe": {PublicKey: "pk", Secret: "sk"},
		},
	}
	m.PriceIndex.Set("Book", entity.PriceEntry{Price: 1200})

	svc := service.NewPaymentService(
		&controllerManifests{manifest: m},
		provider.NewRegistry(&controllerProvider{url: upstreamURL}),
		store,
		time.Second,
	)
	return NewPaymentController(svc)
}

func performCharge(t *testing.T, c *PaymentController, body string) (*httptest.ResponseRecorder, *types.PaymentResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payments/stripe", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/payments/:provider")
	ctx.SetParamNames("provider")
	ctx.SetParamValues("stripe")

	if err := c.Charge(ctx); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var response types.PaymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return rec, &response
}

func TestChargeEndpointSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"ch_1"}`))
	}))
	defer upstream.Close()

	store := &controllerStore{}
	c := newController(upstream.URL, store)

	rec, response := performCharge(t, c, `{"product":"Book","ref":"order-42","token":"tok_x"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if response.Message != "Payment successful" {
		t.Fatalf("unexpected message: %q", response.Message)
	}
	if string(response.Data) != `{"id":"ch_1"}` {
		t.Fatalf("expected raw gateway response, got %s", response.Data)
	}
	if store.records != 1 {
		t.Fatalf("expected one recorded transaction, got %d", store.records)
	}
}

func TestChargeEndpointUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"card_declined"}`))
	}))
	defer upstream.Close()

	store := &controllerStore{}
	c := newController(upstream.URL, store)

	rec, response := performCharge(t, c, `{"product":"Book","token":"tok_x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if response.Message != "Payment failed" {
		t.Fatalf("unexpected message: %q", response.Message)
	}
	if string(response.Data) != `{"error":"card_declined"}` {
		t.Fatalf("expected raw upstream error payload, got %s", response.Data)
	}
	if store.records != 0 {
		t.Fatalf("expected zero recorded transactions, got %d", store.records)
	}
}

func TestChargeEndpointUnknownProduct(t *testing.T) {
	store := &controllerStore{}
	c := newController("http://unreachable.invalid", store)

	rec, response := performCharge(t, c, `{"product":"Gadget"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if response.Message != "Payment failed" {
		t.Fatalf("unexpected message: %q", response.Message)
	}
}

func TestChargeEndpointMissingProduct(t *testing.T) {
	store := &controllerStore{}
	c := newController("http://unreachable.invalid", store)

	rec, response := performCharge(t, c, `{"token":"tok_x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if response.Message != "Payment failed" {
		t.Fatalf("unexpected message: %q", response.Message)
	}
	if store.records != 0 {
		t.Fatalf("expected zero recorded transactions, got %d", store.records)
	}
}
