package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	customerdomain "github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// PaymentController handles standalone payment requests
type PaymentController struct {
	billingService *service.BillingService
	logger         logger.Logger
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(billingService *service.BillingService, logger logger.Logger) *PaymentController {
	return &PaymentController{
		billingService: billingService,
		logger:         logger,
	}
}

// Create records a payment against a customer's outstanding balance
// @Summary Record payment
// @Description Records a standalone payment, reducing the customer's balance
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.PaymentRequest true "Payment data"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /payments [post]
func (c *PaymentController) Create(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	pay, err := c.billingService.RecordPayment(ctx, req.CustomerID, req.Amount,
		billing.PaymentMethod(req.Mode), req.Reference, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, customerdomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", ""))
		case errors.Is(err, billing.ErrInvalidAmount), errors.Is(err, billing.ErrInvalidPaymentMode):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid payment data", err.Error()))
		default:
			c.logger.Error("failed to record payment", "customer_id", req.CustomerID, "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save payment", ""))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(pay))
}
