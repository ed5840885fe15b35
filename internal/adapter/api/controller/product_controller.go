package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	productdomain "github.com/kiranakonnect/kirana-konnect/internal/domain/product"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// ProductController handles product catalog requests
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController creates a new ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates a new product
// @Summary Create product
// @Description Adds a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product data"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(req.Name, req.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid product data", err.Error()))
		return
	}

	p.Barcode = req.Barcode
	p.Category = req.Category
	p.Unit = req.Unit
	p.CostPrice = req.CostPrice
	p.PricePerKg = req.PricePerKg
	p.IsWeightBased = req.IsWeightBased
	p.StockQuantity = req.StockQuantity
	p.ReorderLevel = req.ReorderLevel

	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid expiry date, expected YYYY-MM-DD", err.Error()))
			return
		}
		p.ExpiryDate = &expiry
	}

	if err := c.productRepo.Create(ctx, p); err != nil {
		c.logger.Error("failed to create product", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save product", ""))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// List returns products with pagination
// @Summary List products
// @Description Returns products ordered by name
// @Tags products
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	offset := (pagination.Page - 1) * pagination.PageSize
	products, err := c.productRepo.List(ctx, pagination.PageSize, offset)
	if err != nil {
		c.logger.Error("failed to list products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list products", ""))
		return
	}

	total, err := c.productRepo.Count(ctx)
	if err != nil {
		c.logger.Error("failed to count products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list products", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products, total, pagination.Page, pagination.PageSize))
}

// Get returns a product by ID
// @Summary Get product
// @Description Returns a product by its ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid product id", ""))
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", ""))
			return
		}
		c.logger.Error("failed to fetch product", "product_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Refill adds stock to a product
// @Summary Refill stock
// @Description Increments a product's on-hand quantity
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param refill body dto.RefillRequest true "Refill quantity"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id}/refill [post]
func (c *ProductController) Refill(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid product id", ""))
		return
	}

	var req dto.RefillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request body", err.Error()))
		return
	}

	if err := c.productRepo.AddStock(ctx, id, req.Quantity); err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "product not found", ""))
			return
		}
		c.logger.Error("failed to refill stock", "product_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to refill stock", ""))
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		c.logger.Error("failed to fetch product after refill", "product_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to fetch product", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// LowStock returns products at or below their reorder level
// @Summary Low stock products
// @Description Returns low-stock products with severity and restock guidance
// @Tags products
// @Produce json
// @Success 200 {object} dto.LowStockResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/low-stock [get]
func (c *ProductController) LowStock(ctx *gin.Context) {
	products, err := c.productRepo.ListLowStock(ctx)
	if err != nil {
		c.logger.Error("failed to list low stock products", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list low stock products", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLowStockResponse(products))
}
