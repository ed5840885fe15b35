package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
	"github.com/kiranakonnect/kirana-konnect/pkg/report"
)

// ReportController handles business summary and PDF export requests
type ReportController struct {
	reportService *service.ReportService
	logger        logger.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *service.ReportService, logger logger.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// Summary returns the business-wide totals
// @Summary Business summary
// @Description Returns product, sales, customer and outstanding totals
// @Tags reports
// @Produce json
// @Success 200 {object} report.Summary
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/business [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	summary, err := c.reportService.SummarizeBusiness(ctx)
	if err != nil {
		c.logger.Error("failed to build business summary", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to build business summary", ""))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// PDF renders the business report as a downloadable PDF
// @Summary Business report PDF
// @Description Renders the business summary, product catalog and customer balances as a PDF download
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/business/pdf [get]
func (c *ReportController) PDF(ctx *gin.Context) {
	data, err := c.reportService.BusinessReportData(ctx)
	if err != nil {
		c.logger.Error("failed to assemble report data", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to build report", ""))
		return
	}

	pdf, err := report.Render(data)
	if err != nil {
		c.logger.Error("failed to render report pdf", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to render report", ""))
		return
	}

	filename := fmt.Sprintf("business-report-%s.pdf", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
