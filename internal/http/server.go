// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smartpark/internal/http/handlers"
	"smartpark/internal/http/middleware"
	"smartpark/internal/infra"
)

type ServerDeps struct {
	Pricing  handlers.PricingService
	Spots    handlers.SpotService
	Zones    handlers.ZoneService
	Verifier infra.TokenVerifier
	// PricingTimeout bounds a single quote calculation.
	PricingTimeout time.Duration
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(s.deps.Verifier))

	pricingHandler := handlers.NewPricingHandler(s.deps.Pricing, s.deps.PricingTimeout)
	api.POST("/pricing/calculate", pricingHandler.Calculate)
	api.GET("/pricing/history/:zoneId", pricingHandler.History)
	api.GET("/pricing/peak-hours/:zoneId", pricingHandler.PeakHours)

	spotHandler := handlers.NewSpotHandler(s.deps.Spots)
	api.GET("/spots/:id", spotHandler.Get)
	api.PUT("/spots/:id/maintenance", middleware.RequireRole("admin", "staff"), spotHandler.SetMaintenance)

	zoneHandler := handlers.NewZoneHandler(s.deps.Zones)
	api.GET("/zones/:id", zoneHandler.Get)

	return r
}
