package route

import (
	"github.com/gin-gonic/gin"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/controller"
)

// RegisterProductRoutes registers the product module routes
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/low-stock", productController.LowStock)
		products.GET("/:id", productController.Get)
		products.POST("/:id/refill", productController.Refill)
	}
}
