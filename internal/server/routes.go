package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes registers the API and metrics endpoints and wraps them in the
// request logger.
func (s *ServerContext) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/locations", s.HandleLocations)
	router.HandlerFunc(http.MethodGet, "/api/distance", s.HandleDistance)
	router.HandlerFunc(http.MethodGet, "/api/near", s.HandleNear)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	return RequestLogger(router)
}
