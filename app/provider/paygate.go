package provider

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/transactify/transactify/app/entity"
)

const paygateInitiateURL = "https://secure.paygate.co.za/payweb3/initiate.trans"

// PaygateProvider initiates a PayWeb3 transaction in ZAR. Unlike the other
// gateways it authenticates with HTTP Basic using the paygate id and
// secret.
type PaygateProvider struct {
	now func() time.Time
}

func NewPaygateProvider() *PaygateProvider {
	return &PaygateProvider{now: time.Now}
}

func (p *PaygateProvider) Name() string {
	return "paygate"
}

func (p *PaygateProvider) BuildCharge(creds entity.Credentials, req *ChargeRequest, priceCents int64, urls entity.CallbackURLs) (*RequestSpec, error) {
	body, err := json.Marshal(map[string]interface{}{
		"PAYGATE_ID":       creds.PublicKey,
		"REFERENCE":        req.Ref,
		"AMOUNT":           priceCents,
		"CURRENCY":         "ZAR",
		"RETURN_URL":       urls.ReturnURL,
		"TRANSACTION_DATE": p.now().UTC().Format(time.RFC3339),
		"LOCALE":           "en-za",
		"COUNTRY":          "ZAF",
		"EMAIL":            req.Email,
	})
	if err != nil {
		return nil, err
	}

	header := jsonHeader()
	token := base64.StdEncoding.EncodeToString([]byte(creds.PublicKey + ":" + creds.Secret))
	header.Set("Authorization", "Basic "+token)

	return &RequestSpec{
		Method: http.MethodPost,
		URL:    paygateInitiateURL,
		Header: header,
		Body:   body,
	}, nil
}
