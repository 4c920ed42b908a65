// Package router defines how HTTP routes are registered for the catalog.
package router

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing

	"github.com/avolkov/tour-catalog/internal/handler"
	"github.com/avolkov/tour-catalog/internal/view"
)

// RegisterRoutes wires every endpoint of the service onto the provided Echo
// instance. The cache middleware is applied only to the two read endpoints
// of the JSON API; mutations always reach the store.
func RegisterRoutes(e *echo.Echo, tours *handler.TourHandler, pages *handler.PageHandler, cache echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// JSON CRUD API for tour products.
	api := e.Group("/api/product")
	api.POST("/", tours.CreateTour)
	api.GET("/", tours.ListTours, cache)
	api.GET("/:id", tours.GetTour, cache)
	api.PATCH("/:id", tours.UpdateTourPrice)
	api.DELETE("/:id", tours.DeleteTour)

	// Server-rendered storefront. The index doubles as the search form
	// target, which is why it answers POST as well.
	e.GET("/", pages.Index)
	e.POST("/", pages.Index)
	e.GET("/navigation/", pages.Navigation)
	e.GET("/:id", pages.Detail)

	// Stylesheets and images for the storefront, embedded in the binary.
	e.StaticFS("/static", view.StaticFS())
}
