package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Dan9191/budget-alerts/internal/service"
)

// Runner triggers one evaluation run
type Runner interface {
	Run(ctx context.Context) (service.CheckResult, error)
}

type Handler struct {
	svc Runner
}

func NewHandler(svc Runner) *Handler {
	return &Handler{svc: svc}
}

type checkResponse struct {
	Shortfalls  int    `json:"shortfalls"`
	LowBalances int    `json:"low_balances"`
	Summary     string `json:"summary,omitempty"`
}

// RunCheck handles the external trigger: runs one evaluation and
// reports what was alerted on
func (h *Handler) RunCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Run(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Check failed: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(checkResponse{
		Shortfalls:  len(result.Shortfalls),
		LowBalances: len(result.LowBalances),
		Summary:     result.Summary(),
	})
}

// Health handles liveness checks
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
