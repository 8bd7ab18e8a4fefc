package routes

import (
	"context"
	"log"
	"net/http"

	_ "construction_dashboard/docs" // swag registration
	"construction_dashboard/internal/adapter/http/handlers"
	"construction_dashboard/internal/config"
	"construction_dashboard/internal/infrastructure/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Catalog     *handlers.CatalogHandler
	Projects    *handlers.ProjectHandler
	Estimations *handlers.EstimationHandler
	Agreements  *handlers.AgreementHandler
	Payments    *handlers.PaymentHandler
}

func NewHandlers(uc UseCases, cfg config.Config) Handlers {
	return Handlers{
		Catalog:     handlers.NewCatalogHandler(uc.Catalog),
		Projects:    handlers.NewProjectHandler(uc.Projects),
		Estimations: handlers.NewEstimationHandler(uc.Estimations),
		Agreements:  handlers.NewAgreementHandler(uc.Agreements),
		Payments:    handlers.NewPaymentHandler(uc.Payments, cfg.Payments.Mock),
	}
}

// Run opens storage, wires the application and serves until the listener fails.
func Run(ctx context.Context, cfg config.Config) error {
	repos, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	uc := NewUseCases(repos, cfg)
	router := NewRouter(NewHandlers(uc, cfg))

	log.Printf("[http] listening port=%s env=%s storage=%s", cfg.Port, cfg.Env, cfg.StorageDriver)
	return router.Run(":" + cfg.Port)
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addProjectRoutes(v1, h.Projects)
	addEstimationRoutes(v1, h.Estimations)
	addAgreementRoutes(v1, h.Agreements)
	addPaymentRoutes(v1, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
