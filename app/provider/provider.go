package provider

import (
	"net/http"

	"github.com/transactify/transactify/app/entity"
)

// ChargeRequest carries the checkout fields handed to a provider. Each
// provider uses its own subset; unused fields are ignored.
type ChargeRequest struct {
	Product   string
	Ref       string
	Token     string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	ClientIP  string
}

// RequestSpec describes the single outbound call a charge requires:
// method, endpoint, headers (including authentication) and JSON body.
// Builders produce specs without touching the network, so every provider
// is testable offline.
type RequestSpec struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Provider builds the charge request for one payment gateway.
type Provider interface {
	Name() string
	BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, urls entity.CallbackURLs) (*RequestSpec, error)
}

func jsonHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return h
}

func bearerHeader(secret string) http.Header {
	h := jsonHeader()
	h.Set("Authorization", "Bearer "+secret)
	return h
}
