package provider

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/transactify/transactify/app/entity"
)

const paypalPaymentURL = "https://api.paypal.com/v1/payments/payment"

// PaypalProvider creates a sale payment in USD. Amounts go over the wire
// as whole-currency strings with two decimals.
type PaypalProvider struct{}

func NewPaypalProvider() *PaypalProvider {
	return &PaypalProvider{}
}

func (p *PaypalProvider) Name() string {
	return "paypal"
}

func (p *PaypalProvider) BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, urls entity.CallbackURLs) (*RequestSpec, error) {
	body, err := json.Marshal(map[string]interface{}{
		"intent": "sale",
		"transactions": []map[string]interface{}{
			{
				"amount": map[string]string{
					"total":    fmt.Sprintf("%.2f", float64(priceCents)/100),
					"currency": "USD",
				},
				"description": req.Product,
			},
		},
		"redirect_urls": map[string]string{
			"return_url": urls.ReturnURL,
			"cancel_url": urls.CancelURL,
		},
		"payer": map[string]interface{}{
			"payer_info": map[string]string{
				"email":      req.Email,
				"first_name": req.FirstName,
				"last_name":  req.LastName,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &RequestSpec{
		Method: http.MethodPost,
		URL:    paypalPaymentURL,
		Header: bearerHeader(creds.Secret),
		Body:   body,
	}, nil
}
