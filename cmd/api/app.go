package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/controller"
	"github.com/kiranakonnect/kirana-konnect/internal/adapter/api/route"
	"github.com/kiranakonnect/kirana-konnect/internal/adapter/repository"
	"github.com/kiranakonnect/kirana-konnect/internal/infrastructure/database"
	"github.com/kiranakonnect/kirana-konnect/internal/service"
	"github.com/kiranakonnect/kirana-konnect/pkg/auth"
	"github.com/kiranakonnect/kirana-konnect/pkg/logger"
	"github.com/kiranakonnect/kirana-konnect/pkg/middleware"
)

// App holds the application and its dependencies
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger

	customerController     *controller.CustomerController
	productController      *controller.ProductController
	billingController      *controller.BillingController
	paymentController      *controller.PaymentController
	notificationController *controller.NotificationController
	reportController       *controller.ReportController
	dashboardController    *controller.DashboardController
}

// NewApp creates the application, connecting to the database and wiring
// repositories, services and controllers
func NewApp() (*App, error) {
	log := logger.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewPostgresPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	ledgerService := service.NewLedgerService(customerRepo, billingRepo, log)
	billingService := service.NewBillingService(customerRepo, billingRepo, os.Getenv("SHOP_PREFIX"), log)
	alertService := service.NewAlertService(productRepo, notificationRepo, log)
	reportService := service.NewReportService(customerRepo, productRepo, billingRepo, ledgerService, os.Getenv("SHOP_NAME"), log)
	dashboardService := service.NewDashboardService(billingRepo, productRepo, log)

	tokens, err := auth.NewTokenService()
	if err != nil {
		// staff identity is optional; bills fall back to an empty created_by
		log.Warn("staff token service disabled", "error", err)
		tokens = nil
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger(log))
	router.Use(auth.OptionalIdentity(tokens))

	return &App{
		router:                 router,
		db:                     db,
		logger:                 log,
		customerController:     controller.NewCustomerController(customerRepo, ledgerService, log),
		productController:      controller.NewProductController(productRepo, log),
		billingController:      controller.NewBillingController(billingService, log),
		paymentController:      controller.NewPaymentController(billingService, log),
		notificationController: controller.NewNotificationController(alertService, log),
		reportController:       controller.NewReportController(reportService, log),
		dashboardController:    controller.NewDashboardController(dashboardService, log),
	}, nil
}

// SetupRoutes registers the application routes under basePath
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterCustomerRoutes(api, a.customerController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterBillingRoutes(api, a.billingController, a.paymentController)
	route.RegisterNotificationRoutes(api, a.notificationController)
	route.RegisterReportRoutes(api, a.reportController, a.dashboardController)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start runs the HTTP server
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("server starting", "port", port)
	return a.router.Run(":" + port)
}

// Close releases the application resources
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
