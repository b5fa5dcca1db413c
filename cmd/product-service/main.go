package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/vkoval/product-store-service/internal/config"
	httpAPI "github.com/vkoval/product-store-service/internal/http"
	"github.com/vkoval/product-store-service/internal/http/controller"
	"github.com/vkoval/product-store-service/internal/logger"
	"github.com/vkoval/product-store-service/internal/metrics"
	"github.com/vkoval/product-store-service/internal/repository/sql"
	"github.com/vkoval/product-store-service/internal/service"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)
	if !conf.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	db, err := sql.StartDB(ctx, conf.Database)
	handleErr("starting database", err)

	// Create the persistence gateway and service
	productRepository := sql.NewProductRepository(db)
	productService := service.NewProductService(productRepository)

	// Start metrics server
	metrics.StartMetricsServer(conf)

	// Start HTTP server
	ctr := controller.New(conf)
	productCtr := controller.NewProductController(productService)
	httpServer := gin.New()
	httpServer = httpAPI.InitRouter(httpServer, ctr, productCtr)

	slog.Info("product store service initialized", slog.String("port", conf.HTTPServer.Port))
	err = httpServer.Run(":" + conf.HTTPServer.Port)
	handleErr("listening to HTTP requests", err)
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
