package provider

import (
	"encoding/json"
	"net/http"

	"github.com/transactify/transactify/app/entity"
)

const payuOrdersURL = "https://secure.payu.com/api/v2_1/orders"

// PayuProvider creates a one-line order in USD. The merchant POS id is the
// configured public key; the caller reference becomes the external order
// id.
type PayuProvider struct{}

func NewPayuProvider() *PayuProvider {
	return &PayuProvider{}
}

func (p *PayuProvider) Name() string {
	return "payu"
}

func (p *PayuProvider) BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, _ entity.CallbackURLs) (*RequestSpec, error) {
	body, err := json.Marshal(map[string]interface{}{
		"customerIp":    req.ClientIP,
		"merchantPosId": creds.PublicKey,
		"description":   req.Product,
		"currencyCode":  "USD",
		"totalAmount":   priceCents,
		"extOrderId":    req.Ref,
		"buyer": map[string]string{
			"email":     req.Email,
			"phone":     req.Phone,
			"firstName": req.FirstName,
			"lastName":  req.LastName,
		},
		"products": []map[string]interface{}{
			{"name": req.Product, "unitPrice": priceCents, "quantity": 1},
		},
	})
	if err != nil {
		return nil, err
	}

	return &RequestSpec{
		Method: http.MethodPost,
		URL:    payuOrdersURL,
		Header: bearerHeader(creds.Secret),
		Body:   body,
	}, nil
}
