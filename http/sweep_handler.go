package http

import (
	"net/http"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
	"github.com/Krishna-debug223/Rent-vs-Buy/service"
)

type SweepHandler struct {
	service *service.SweepService
}

func NewSweepHandler(service *service.SweepService) *SweepHandler {
	return &SweepHandler{service: service}
}

// Sweep handles POST /simulate/sweep.
func (h *SweepHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var input domain.SweepInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Sweep(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
