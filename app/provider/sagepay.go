package provider

import (
	"encoding/json"
	"net/http"

	"github.com/transactify/transactify/app/entity"
)

const sagepayPaymentsURL = "https://api.sagepay.com/v1/payments"

// SagepayProvider charges an opaque payment token in GBP.
type SagepayProvider struct{}

func NewSagepayProvider() *SagepayProvider {
	return &SagepayProvider{}
}

func (p *SagepayProvider) Name() string {
	return "sagepay"
}

func (p *SagepayProvider) BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, _ entity.CallbackURLs) (*RequestSpec, error) {
	body, err := json.Marshal(map[string]interface{}{
		"token":       req.Token,
		"amount":      priceCents,
		"currency":    "GBP",
		"description": req.Product,
		"email":       req.Email,
	})
	if err != nil {
		return nil, err
	}

	return &RequestSpec{
		Method: http.MethodPost,
		URL:    sagepayPaymentsURL,
		Header: bearerHeader(creds.Secret),
		Body:   body,
	}, nil
}
