package api

import (
	"delivery-route-planner/internal/api/handlers"
	"delivery-route-planner/internal/ports"
	"net/http"
)

// Deps are the services the HTTP layer needs. Geocoder and Locator may be nil.
type Deps struct {
	Router   ports.LegRouter
	Geocoder ports.Geocoder
	Locator  ports.NodeLocator
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	locations := &handlers.LocationResolver{Geocoder: deps.Geocoder, Locator: deps.Locator}
	routeHandler := &handlers.RouteHandler{Router: deps.Router, Locations: locations}
	planHandler := &handlers.PlanHandler{Router: deps.Router, Locations: locations}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Route)
	mux.HandleFunc("/plans", planHandler.Plan)

	return loggingMiddleware(mux)
}
