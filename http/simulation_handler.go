package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"sci-simulator/domain"
	"sci-simulator/repository"
	"sci-simulator/service"
)

type SimulationHandler struct {
	service *service.SimulationService
	logger  *logrus.Logger
}

func NewSimulationHandler(service *service.SimulationService, logger *logrus.Logger) *SimulationHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &SimulationHandler{service: service, logger: logger}
}

// Simulate runs both regimes for the posted inputs.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectInputs
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Simulate(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithError(err).Error("simulation failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *SimulationHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSimulationNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.WithError(err).WithField("simulation_id", id).Error("failed to load simulation")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *SimulationHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list simulations")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// writeJSON encodes v before touching the response so an encoding failure
// still yields a 500 instead of a success status with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to encode response")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}
