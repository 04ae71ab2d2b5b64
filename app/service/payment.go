package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/transactify/transactify/app/entity"
	"github.com/transactify/transactify/app/provider"
	"github.com/transactify/transactify/app/repository"
)

// manifestStore is the slice of manifest.Store the facade needs.
type manifestStore interface {
	Load() (*entity.ProjectManifest, error)
}

// ChargeResult is a settled charge: the raw gateway response plus an echo
// of the product and reference it was charged for.
type ChargeResult struct {
	Response json.RawMessage
	Product  string
	Ref      string
}

// PaymentService is the library entry point for processing one payment
// request. It re-reads the project manifest on every charge, resolves the
// product price, dispatches to the selected provider, and records the
// transaction on success. Each charge performs exactly one outbound call;
// there is no retry and no reconciliation of ambiguous outcomes.
type PaymentService struct {
	manifests manifestStore
	registry  *provider.Registry
	store     repository.TransactionStore
	client    *http.Client
}

func NewPaymentService(
	manifests manifestStore,
	registry *provider.Registry,
	store repository.TransactionStore,
	httpTimeout time.Duration,
) *PaymentService {
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}

	return &PaymentService{
		manifests: manifests,
		registry:  registry,
		store:     store,
		client:    &http.Client{Timeout: httpTimeout},
	}
}

func (s *PaymentService) Charge(ctx context.Context, providerName string, req *provider.ChargeRequest) (*ChargeResult, error) {
	providerName = strings.ToLower(strings.TrimSpace(providerName))
	if providerName == "" || req == nil || strings.TrimSpace(req.Product) == "" {
		return nil, ErrInvalidRequest
	}

	manifest, err := s.manifests.Load()
	if err != nil {
		return nil, err
	}

	// Price resolution happens before anything leaves the process; an
	// unknown product never issues an outbound call.
	entry, ok := manifest.PriceIndex.Get(req.Product)
	if !ok {
		return nil, ErrUnknownProduct
	}

	creds, ok := manifest.Providers[providerName]
	if !ok || !creds.Configured() {
		return nil, ErrProviderNotConfigured
	}

	gateway, err := s.registry.Get(providerName)
	if err != nil {
		return nil, ErrProviderUnsupported
	}

	spec, err := gateway.BuildCharge(creds, req, entry.Price, manifest.URLs)
	if err != nil {
		return nil, err
	}

	body, chargeErr := s.execute(ctx, providerName, spec)
	if chargeErr != nil {
		return nil, chargeErr
	}

	record := &entity.TransactionRecord{
		Transaction: body,
		Product:     req.Product,
		Ref:         req.Ref,
	}
	if err := s.store.Record(ctx, record); err != nil {
		// The gateway already settled the charge; surfacing the write
		// failure without retrying matches the source design.
		return nil, err
	}

	return &ChargeResult{Response: body, Product: req.Product, Ref: req.Ref}, nil
}

func (s *PaymentService) execute(ctx context.Context, providerName string, spec *provider.RequestSpec) (json.RawMessage, *ChargeError) {
	httpReq, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, bytes.NewReader(spec.Body))
	if err != nil {
		return nil, &ChargeError{Provider: providerName, Err: err}
	}
	for key, values := range spec.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, &ChargeError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ChargeError{Provider: providerName, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ChargeError{Provider: providerName, StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
