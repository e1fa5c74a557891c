// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"servicelocator/internal/delivery/api/router/handler"
	"servicelocator/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiscoveryHandler  *handler.DiscoveryHandler
	SessionHandler    *handler.SessionHandler
	AssessmentHandler *handler.AssessmentHandler
	ProxyHandler      *handler.ProxyHandler
	TileHandler       *handler.TileHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	discoveryHandler  *handler.DiscoveryHandler
	sessionHandler    *handler.SessionHandler
	assessmentHandler *handler.AssessmentHandler
	proxyHandler      *handler.ProxyHandler
	tileHandler       *handler.TileHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		discoveryHandler:  params.DiscoveryHandler,
		sessionHandler:    params.SessionHandler,
		assessmentHandler: params.AssessmentHandler,
		proxyHandler:      params.ProxyHandler,
		tileHandler:       params.TileHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.GET("/discover", r.discoveryHandler.Discover)

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.POST("", r.sessionHandler.StartSession)
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.POST("/:id/search", r.sessionHandler.Search)
		sessionsGroup.POST("/:id/select", r.sessionHandler.Select)
		sessionsGroup.GET("/:id/directions", r.sessionHandler.Directions)
	}

	apiV1.POST("/assessments", r.assessmentHandler.CreateAssessment)

	// Plain-JSON endpoints kept compatible with existing browser clients
	e.GET("/nearest-centres", r.proxyHandler.NearestCentres)
	e.GET("/route", r.proxyHandler.Route)
	e.GET("/centre-details", r.proxyHandler.CentreDetails)
	e.POST("/predict", r.proxyHandler.Predict)

	e.GET(constants.TileRoutePrefix+"/:tileset/:z/:x/:y", r.tileHandler.GetTile)
}
