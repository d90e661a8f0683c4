package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/nutriplan/diet-optimizer/internal/models"
	"github.com/nutriplan/diet-optimizer/internal/service"
)

// PlanHandler handles meal-plan HTTP requests
type PlanHandler struct {
	planner *service.PlannerService
	log     *slog.Logger
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planner *service.PlannerService, log *slog.Logger) *PlanHandler {
	return &PlanHandler{
		planner: planner,
		log:     log,
	}
}

// CreatePlan handles POST /api/plan
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req models.PlanRequest

	// Parse request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode plan request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	plan, err := h.planner.CreatePlan(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create plan", "error", err)

		switch {
		case errors.Is(err, service.ErrInvalidGuideline):
			WriteError(w, http.StatusBadRequest, "Invalid guideline", h.log)
		case errors.Is(err, service.ErrUnknownNutrient):
			WriteError(w, http.StatusUnprocessableEntity, "Guideline references an unknown nutrient", h.log)
		case errors.Is(err, service.ErrPlanInfeasible):
			WriteError(w, http.StatusUnprocessableEntity, "Guidelines admit no meal plan", h.log)
		case errors.Is(err, service.ErrPlanUnbounded):
			WriteError(w, http.StatusUnprocessableEntity, "Plan cost has no finite minimum", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
	h.log.Info("plan created successfully", "plan_id", plan.ID, "total_cost", plan.TotalCost)
}
