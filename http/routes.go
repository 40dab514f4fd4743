package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter registers every route. The /sci routes are wrapped one by one in
// the rate limiter and live on the root router so that a known path with the
// wrong method answers 405; /healthz is not limited.
func NewRouter(
	simulations *SimulationHandler,
	scenarios *ScenarioHandler,
	limiter *RateLimiter,
	logger *logrus.Logger,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger(logger))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	limited := RateLimitMiddleware(limiter, logger)
	sci := func(path string, handler http.HandlerFunc, method string) {
		router.Handle(path, limited(handler)).Methods(method)
	}

	sci("/sci/simulate", simulations.Simulate, http.MethodPost)
	sci("/sci/simulations", simulations.ListSimulations, http.MethodGet)
	sci("/sci/simulations/{id}", simulations.GetSimulation, http.MethodGet)
	sci("/sci/scenarios", scenarios.ListScenarios, http.MethodGet)
	sci("/sci/scenarios/{name}", scenarios.GetScenario, http.MethodGet)

	return router
}
