package ginserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"rentdesk/internal/infra/config"
	"rentdesk/internal/infra/obs"
)

type CalendarHTTP interface {
	Calendar(c *gin.Context)
}

type ReservationHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type PricingHTTP interface {
	List(c *gin.Context)
	Assign(c *gin.Context)
	Remove(c *gin.Context)
	Quote(c *gin.Context)
	Report(c *gin.Context)
}

type UnitHTTP interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
}

type Handlers struct {
	Calendar    CalendarHTTP
	Reservation ReservationHTTP
	Pricing     PricingHTTP
	Unit        UnitHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Unit != nil {
		api.GET("/units", h.Unit.List)
		api.POST("/units", h.Unit.Create)
		api.GET("/units/:id", h.Unit.Get)
	}
	if h.Calendar != nil {
		api.GET("/units/:id/calendar", h.Calendar.Calendar)
	}
	if h.Reservation != nil {
		api.GET("/units/:id/reservations", h.Reservation.List)
		api.POST("/units/:id/reservations", h.Reservation.Create)
		api.PUT("/reservations/:id", h.Reservation.Update)
		api.DELETE("/reservations/:id", h.Reservation.Delete)
	}
	if h.Pricing != nil {
		api.GET("/units/:id/prices", h.Pricing.List)
		api.POST("/units/:id/prices", h.Pricing.Assign)
		api.DELETE("/units/:id/prices/:priceId", h.Pricing.Remove)
		api.POST("/units/:id/quote", h.Pricing.Quote)
		api.GET("/units/:id/price-report", h.Pricing.Report)
	}

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func configureGinMode(env string) string {
	switch env {
	case "dev", "local":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Mode()
}
