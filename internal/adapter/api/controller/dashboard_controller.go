package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// DashboardController handles dashboard statistics requests
type DashboardController struct {
	dashboardService *service.DashboardService
	logger           logger.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *service.DashboardService, logger logger.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Stats returns the daily profit breakdown
// @Summary Daily profit stats
// @Description Returns revenue, cost, profit and day-over-day growth for a day (defaults to today)
// @Tags dashboard
// @Produce json
// @Param date query string false "Day to report on (YYYY-MM-DD)"
// @Success 200 {object} service.DailyProfitStats
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	date := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err.Error()))
			return
		}
		date = parsed
	}

	stats, err := c.dashboardService.DailyProfit(ctx, date)
	if err != nil {
		c.logger.Error("failed to compute daily profit", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to compute stats", ""))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
