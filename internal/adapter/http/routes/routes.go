package routes

import (
	"context"
	"strconv"

	_ "workorder_engine/docs" // This will be auto-generated
	"workorder_engine/internal/adapter/http/handlers"
	"workorder_engine/internal/adapter/http/middleware"
	"workorder_engine/internal/config"
	"workorder_engine/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.Configure(cfg.Logging.Level, cfg.Logging.Format)

	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	deps, err := buildDependencies(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to wire dependencies")
	}
	defer deps.Close()

	getRoutes(router, deps)

	log.WithFields(logrus.Fields{
		"port":         cfg.HTTP.Port,
		"store":        cfg.Store.Driver,
		"notification": cfg.Notification.Driver,
		"storage":      cfg.Storage.Driver,
		"lock":         cfg.Lock.Enabled,
	}).Info("starting work order engine")

	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		log.WithError(err).Fatal("Failed to startup the application")
	}
}

func getRoutes(r *gin.Engine, deps *dependencies) {
	workOrderHandler := handlers.NewWorkOrderHandler(deps.workOrders)
	permissionHandler := handlers.NewPermissionHandler()

	// Rotas publicas
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addPermissionRoutes(v1, permissionHandler)

	authed := v1.Group("", middleware.ActingUserMiddleware())
	addWorkOrderRoutes(authed, workOrderHandler)
}

func setMiddlewares(r *gin.Engine, log logrus.FieldLogger) {
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
}
