package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/transactify/transactify/app/factory"
	"github.com/transactify/transactify/app/manifest"
	"github.com/transactify/transactify/app/provider"
	"github.com/transactify/transactify/app/service"
	"github.com/transactify/transactify/app/types"
)

type PaymentController struct {
	paymentService *service.PaymentService
	logger         logrus.FieldLogger
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		logger:         factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

// Charge processes one checkout request against the provider named in the
// path. Success is 200 with the raw gateway response; any failure is 400
// with the error payload, mirroring the library's two observable outcomes.
func (c *PaymentController) Charge(ctx echo.Context) error {
	req, err := types.NewChargeRequestFromContext(ctx)
	if err != nil {
		return c.writeFailure(ctx, errorData("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.writeFailure(ctx, errorData(err.Error()))
	}

	result, err := c.paymentService.Charge(ctx.Request().Context(), ctx.Param("provider"), &provider.ChargeRequest{
		Product:   req.Product,
		Ref:       req.Ref,
		Token:     req.Token,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		ClientIP:  ctx.RealIP(),
	})
	if err != nil {
		var chargeErr *service.ChargeError
		switch {
		case errors.As(err, &chargeErr) && len(chargeErr.Body) > 0:
			return c.writeFailure(ctx, json.RawMessage(chargeErr.Body))
		case errors.Is(err, service.ErrInvalidRequest),
			errors.Is(err, service.ErrUnknownProduct),
			errors.Is(err, service.ErrProviderUnsupported),
			errors.Is(err, service.ErrProviderNotConfigured),
			errors.Is(err, manifest.ErrManifestNotFound):
			return c.writeFailure(ctx, errorData(err.Error()))
		default:
			c.logger.WithError(err).Error("Charge failed")
			return c.writeFailure(ctx, errorData(err.Error()))
		}
	}

	return ctx.JSON(http.StatusOK, &types.PaymentResponse{
		Message: "Payment successful",
		Data:    result.Response,
	})
}

func (c *PaymentController) writeFailure(ctx echo.Context, data json.RawMessage) error {
	return ctx.JSON(http.StatusBadRequest, &types.PaymentResponse{
		Message: "Payment failed",
		Data:    data,
	})
}

func errorData(message string) json.RawMessage {
	encoded, _ := json.Marshal(map[string]string{"error": message})
	return encoded
}
