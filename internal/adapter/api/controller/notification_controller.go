package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/dto"
	notificationdomain "github.com/kiranakonnect/kirana-konnect/internal/domain/notification"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
)

// NotificationController handles alert and notification requests
type NotificationController struct {
	alertService *service.AlertService
	logger       logger.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(alertService *service.AlertService, logger logger.Logger) *NotificationController {
	return &NotificationController{
		alertService: alertService,
		logger:       logger,
	}
}

// List returns unread notifications after running the alert scan
// @Summary List notifications
// @Description Runs the inventory and expiry scans, then returns unread notifications newest first
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.NotificationListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	notifications, err := c.alertService.ListUnread(ctx)
	if err != nil {
		c.logger.Error("failed to list notifications", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list notifications", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications, time.Now()))
}

// MarkRead marks a notification as read
// @Summary Mark notification read
// @Description Marks a notification as read; already-read notifications are a no-op
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid notification id", ""))
		return
	}

	if err := c.alertService.MarkRead(ctx, id); err != nil {
		if errors.Is(err, notificationdomain.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "notification not found", ""))
			return
		}
		c.logger.Error("failed to mark notification read", "notification_id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to mark notification read", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("notification marked as read", nil))
}

// DisableBackup records that automatic backups were turned off
// @Summary Disable backup alerts
// @Description Replaces the backup reminder with a single urgent backup-disabled alert
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/backup/disable [post]
func (c *NotificationController) DisableBackup(ctx *gin.Context) {
	if err := c.alertService.DisableBackup(ctx); err != nil {
		c.logger.Error("failed to disable backup alerts", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to disable backup alerts", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("backup disabled", nil))
}

// EnableBackup clears backup alerts
// @Summary Enable backup alerts
// @Description Clears any backup-related alerts; the reminder returns on the next scan
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notifications/backup/enable [post]
func (c *NotificationController) EnableBackup(ctx *gin.Context) {
	if err := c.alertService.EnableBackup(ctx); err != nil {
		c.logger.Error("failed to enable backup alerts", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to enable backup alerts", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("backup enabled", nil))
}
