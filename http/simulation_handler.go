package http

import (
	"log"
	"net/http"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
	"github.com/Krishna-debug223/Rent-vs-Buy/report"
	"github.com/Krishna-debug223/Rent-vs-Buy/service"
)

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate handles POST /simulate.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var params domain.SimulationParameters
	if !decodeJSON(w, r, &params) {
		return
	}

	resp, err := h.service.Simulate(params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSimulation handles GET /simulations/{id}.
func (h *SimulationHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Report handles POST /simulate/report and answers with a PDF.
func (h *SimulationHandler) Report(w http.ResponseWriter, r *http.Request) {
	var params domain.SimulationParameters
	if !decodeJSON(w, r, &params) {
		return
	}

	resp, err := h.service.Simulate(params)
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := report.GeneratePDF(params, resp.Result)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="rent-vs-buy.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("Error writing report: %v", err)
	}
}
