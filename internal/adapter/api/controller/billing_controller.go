package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	"github.com/kiranakonnect/kirana-konnect/internal/domain/billing"
	customerdomain "github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/auth"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// BillingController handles the bill write and read paths
type BillingController struct {
	billingService *service.BillingService
	logger         logger.Logger
}

// NewBillingController creates a new BillingController
func NewBillingController(billingService *service.BillingService, logger logger.Logger) *BillingController {
	return &BillingController{
		billingService: billingService,
		logger:         logger,
	}
}

// Create creates a new bill
// @Summary Create bill
// @Description Persists the bill, its items and, for settled sales with a known customer, a payment, atomically
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.BillRequest true "Bill data"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills [post]
func (c *BillingController) Create(ctx *gin.Context) {
	var req dto.BillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	createdBy := ctx.GetString(auth.StaffNameKey)
	bill, err := c.billingService.CreateBill(ctx, req.ToCreateBillInput(createdBy))
	if err != nil {
		switch {
		case errors.Is(err, customerdomain.ErrNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", ""))
		case errors.Is(err, billing.ErrInvalidPaymentMode),
			errors.Is(err, billing.ErrInvalidTotal),
			errors.Is(err, billing.ErrInconsistentTotal),
			errors.Is(err, billing.ErrNoItems),
			errors.Is(err, billing.ErrInvalidItemQuantity),
			errors.Is(err, billing.ErrInvalidItemPrice),
			errors.Is(err, billing.ErrNoCustomer):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid bill data", err.Error()))
		default:
			c.logger.Error("failed to create bill", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save bill", ""))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// Get returns a bill by its bill number
// @Summary Get bill
// @Description Returns a bill with its line items by bill number
// @Tags bills
// @Produce json
// @Param number path string true "Bill number"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills/{number} [get]
func (c *BillingController) Get(ctx *gin.Context) {
	number := ctx.Param("number")

	bill, err := c.billingService.GetBill(ctx, number)
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "bill not found", ""))
			return
		}
		c.logger.Error("failed to fetch bill", "bill_number", number, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch bill", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(bill))
}
