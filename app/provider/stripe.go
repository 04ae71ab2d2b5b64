package provider

import (
	"encoding/json"
	"net/http"

	"github.com/transactify/transactify/app/entity"
)

const stripeChargeURL = "https://api.stripe.com/v1/charges"

// StripeProvider charges a tokenized card source in USD.
type StripeProvider struct{}

func NewStripeProvider() *StripeProvider {
	return &StripeProvider{}
}

func (p *StripeProvider) Name() string {
	return "stripe"
}

func (p *StripeProvider) BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, _ entity.CallbackURLs) (*RequestSpec, error) {
	body, err := json.Marshal(map[string]interface{}{
		"source":        req.Token,
		"amount":        priceCents,
		"currency":      "usd",
		"description":   req.Product,
		"receipt_email": req.Email,
	})
	if err != nil {
		return nil, err
	}

	return &RequestSpec{
		Method: http.MethodPost,
		URL:    stripeChargeURL,
		Header: bearerHeader(creds.Secret),
		Body:   body,
	}, nil
}
