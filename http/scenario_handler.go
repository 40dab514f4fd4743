package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"sci-simulator/config"
)

type ScenarioHandler struct {
	scenarios *config.Scenarios
}

func NewScenarioHandler(scenarios *config.Scenarios) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios}
}

func (h *ScenarioHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scenarios.List())
}

func (h *ScenarioHandler) GetScenario(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	scenario, ok := h.scenarios.Get(name)
	if !ok {
		http.Error(w, "scenario not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, scenario)
}
