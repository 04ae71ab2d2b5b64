package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrUnknownProduct        = errors.New("product not found in price index")
	ErrProviderUnsupported   = errors.New("provider is not supported")
	ErrProviderNotConfigured = errors.New("provider is not configured in this project")
)

// ChargeError is a failed outbound charge: a transport error, or a
// non-2xx gateway response whose raw body is preserved for the caller. No
// transaction is recorded for a failed charge.
type ChargeError struct {
	Provider   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ChargeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s charge failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s charge failed: status=%d body=%s", e.Provider, e.StatusCode, string(e.Body))
}

func (e *ChargeError) Unwrap() error {
	return e.Err
}
