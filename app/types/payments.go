package types

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// ChargeRequest is the inbound checkout body. Providers vary in which
// fields they use; only product is universally required.
type ChargeRequest struct {
	Product   string `json:"product"`
	Ref       string `json:"ref"`
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

func NewChargeRequestFromContext(ctx echo.Context) (*ChargeRequest, error) {
	var body ChargeRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Product = strings.TrimSpace(body.Product)
	body.Ref = strings.TrimSpace(body.Ref)
	body.Token = strings.TrimSpace(body.Token)
	body.Email = strings.TrimSpace(body.Email)
	body.FirstName = strings.TrimSpace(body.FirstName)
	body.LastName = strings.TrimSpace(body.LastName)
	body.Phone = strings.TrimSpace(body.Phone)

	return &body, nil
}

func (r *ChargeRequest) Validate() error {
	if r.Product == "" {
		return errors.New("product is required")
	}
	return nil
}

// PaymentResponse is the facade boundary envelope: message is "Payment
// successful" or "Payment failed", data carries the raw gateway response
// or error payload.
type PaymentResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
