package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vkoval/product-store-service/internal/http/controller"
	"github.com/vkoval/product-store-service/internal/http/middleware"
)

// InitRouter registers all routes and shared middleware on the engine.
func InitRouter(server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())
	server.Use(middleware.RequestID())
	server.Use(middleware.Metrics())

	server.GET("/health", ctr.Health)
	server.GET("/", ctr.Index)

	// Product endpoints
	products := server.Group("/products")
	{
		products.POST("", middleware.RequireJSON(), productCtr.CreateProduct)
		products.GET("", productCtr.ListProducts)
		products.GET("/:id", productCtr.GetProduct)
		products.PUT("/:id", middleware.RequireJSON(), productCtr.UpdateProduct)
		products.DELETE("/:id", productCtr.DeleteProduct)
	}

	return server
}
