package route

import (
	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/controller"
)

// RegisterBillingRoutes registers the bill and payment routes
func RegisterBillingRoutes(r *gin.RouterGroup, billingController *controller.BillingController, paymentController *controller.PaymentController) {
	bills := r.Group("/bills")
	{
		bills.POST("", billingController.Create)
		bills.GET("/:number", billingController.Get)
	}

	payments := r.Group("/payments")
	{
		payments.POST("", paymentController.Create)
	}
}
