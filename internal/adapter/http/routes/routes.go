package routes

import (
	"log"
	"strconv"

	_ "resto_requests/docs" // This will be auto-generated
	"resto_requests/internal/adapter/http/handlers"
	"resto_requests/internal/adapter/http/middleware"
	repository2 "resto_requests/internal/adapter/persistence/repository"
	"resto_requests/internal/infrastructure/database"
	"resto_requests/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	maintenanceRepo := repository2.NewMaintenanceDynamoRepository(ddb)
	userRepo := repository2.NewUserProfileDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	profileUseCase := usecase.NewProfileUseCase(userRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, notificationRepo)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(maintenanceRepo, notificationRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, maintenanceRepo)
	reportUseCase := usecase.NewReportUseCase(orderRepo, maintenanceRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything else requires an authenticated identity.
	authed := v1.Group("")
	authed.Use(middleware.Identity(profileUseCase))
	addRequestRoutes(authed, orderHandler, maintenanceHandler)
	addReportingRoutes(authed, dashboardHandler, reportHandler)
	addNotificationRoutes(authed, notificationHandler)
	addProfileRoutes(authed, profileHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
