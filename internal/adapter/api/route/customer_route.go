package route

import (
	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/controller"
)

// RegisterCustomerRoutes registers the customer module routes
func RegisterCustomerRoutes(r *gin.RouterGroup, customerController *controller.CustomerController) {
	customers := r.Group("/customers")
	{
		customers.POST("", customerController.Create)
		customers.GET("", customerController.List)
		customers.GET("/search", customerController.Search)
		customers.GET("/:id", customerController.Get)
		customers.GET("/:id/ledger", customerController.Ledger)
		customers.GET("/:id/balance", customerController.Balance)
	}
}
