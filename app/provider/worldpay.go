package provider

import (
	"encoding/json"
	"net/http"

	"github.com/transactify/transactify/app/entity"
)

const worldpayOrdersURL = "https://api.worldpay.com/v1/orders"

// WorldpayProvider creates an order in GBP with explicit success and
// failure redirect URLs.
type WorldpayProvider struct{}

func NewWorldpayProvider() *WorldpayProvider {
	return &WorldpayProvider{}
}

func (p *WorldpayProvider) Name() string {
	return "worldpay"
}

func (p *WorldpayProvider) BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, urls entity.CallbackURLs) (*RequestSpec, error) {
	body, err := json.Marshal(map[string]interface{}{
		"token":             req.Token,
		"amount":            priceCents,
		"currencyCode":      "GBP",
		"name":              req.Product,
		"orderDescription":  req.Product,
		"customerOrderCode": req.Ref,
		"successUrl":        urls.ReturnURL,
		"failureUrl":        urls.CancelURL,
		"customerEmail":     req.Email,
	})
	if err != nil {
		return nil, err
	}

	return &RequestSpec{
		Method: http.MethodPost,
		URL:    worldpayOrdersURL,
		Header: bearerHeader(creds.Secret),
		Body:   body,
	}, nil
}
