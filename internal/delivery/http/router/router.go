// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfinder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NavigationHandler *handler.NavigationHandler
	RendererHandler   *handler.RendererHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	navigationHandler *handler.NavigationHandler
	rendererHandler   *handler.RendererHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		navigationHandler: params.NavigationHandler,
		rendererHandler:   params.RendererHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/healthz", handler.HealthCheck)

	navGroup := e.Group("/api/navigation")
	{
		navGroup.GET("/state", r.navigationHandler.State)
		navGroup.GET("/buildings", r.navigationHandler.Buildings)
		navGroup.GET("/share", r.navigationHandler.Share)
		navGroup.POST("/building", r.navigationHandler.SelectBuilding)
		navGroup.POST("/floor", r.navigationHandler.SelectFloor)
		navGroup.POST("/navigate", r.navigationHandler.Navigate)
		navGroup.POST("/rooms/start", r.navigationHandler.SelectStartRoom)
		navGroup.POST("/rooms/end", r.navigationHandler.SelectEndRoom)
		navGroup.POST("/swap", r.navigationHandler.Swap)
		navGroup.POST("/clear", r.navigationHandler.Clear)
	}

	rendererGroup := e.Group("/api/renderer")
	{
		rendererGroup.POST("/events", r.rendererHandler.Events)
		rendererGroup.GET("/commands", r.rendererHandler.Commands)
	}
}
