package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	customerdomain "github.com/kiranakonnect/kirana-konnect/internal/domain/customer"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// CustomerController handles customer requests
type CustomerController struct {
	customerRepo customerdomain.Repository
	ledger       *service.LedgerService
	logger       logger.Logger
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, ledger *service.LedgerService, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		ledger:       ledger,
		logger:       logger,
	}
}

// Create creates a new customer
// @Summary Create customer
// @Description Registers a new customer in the shop's book
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerRequest true "Customer data"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	cust, err := customerdomain.NewCustomer(req.Name, req.Phone, req.Address, req.Email, req.IDDocument)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer data", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, cust); err != nil {
		c.logger.Error("failed to create customer", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save customer", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(cust))
}

// List returns customers with pagination
// @Summary List customers
// @Description Returns customers ordered by name
// @Tags customers
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize
	customers, err := c.customerRepo.List(ctx, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("failed to list customers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list customers", ""))
		return
	}

	total, err := c.customerRepo.Count(ctx)
	if err != nil {
		c.logger.Error("failed to count customers", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list customers", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, pagination.Page, pagination.PageSize))
}

// Get returns a customer by ID
// @Summary Get customer
// @Description Returns a customer by its ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer id", ""))
		return
	}

	cust, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", ""))
			return
		}
		c.logger.Error("failed to fetch customer", "customer_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch customer", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(cust))
}

// Search finds customers by name or phone substring
// @Summary Search customers
// @Description Matches customers whose name or phone contains the query
// @Tags customers
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/search [get]
func (c *CustomerController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "missing search query", ""))
		return
	}

	customers, err := c.customerRepo.Search(ctx, query)
	if err != nil {
		c.logger.Error("failed to search customers", "query", query, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to search customers", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, len(customers), 1, len(customers)))
}

// Ledger returns a customer's full transaction history
// @Summary Customer ledger
// @Description Returns the customer, outstanding balance, bills and payments, newest first
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/ledger [get]
func (c *CustomerController) Ledger(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer id", ""))
		return
	}

	ledger, err := c.ledger.Ledger(ctx, id)
	if err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", ""))
			return
		}
		c.logger.Error("failed to build ledger", "customer_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to build ledger", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// Balance returns a customer's outstanding balance
// @Summary Customer balance
// @Description Returns the unpaid bill total minus payments received
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id}/balance [get]
func (c *CustomerController) Balance(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid customer id", ""))
		return
	}

	balance, err := c.ledger.OutstandingBalance(ctx, id)
	if err != nil {
		if errors.Is(err, customerdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "customer not found", ""))
			return
		}
		c.logger.Error("failed to compute balance", "customer_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute balance", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.BalanceResponse{CustomerID: id, Balance: balance})
}
