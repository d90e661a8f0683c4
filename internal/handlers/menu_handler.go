package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nutriplan/diet-optimizer/internal/repository"
	"github.com/nutriplan/diet-optimizer/internal/service"
)

// MenuHandler handles menu-related HTTP requests
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListFoods handles GET /api/menu
// Returns every food on the menu with its cost and nutrient content
func (h *MenuHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	foods, err := h.service.ListFoods(ctx)
	if err != nil {
		h.logger.Error("failed to list foods", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, foods)
}

// GetFood handles GET /api/menu/{foodId}
// Returns a single food or error:
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Food not found
func (h *MenuHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	foodID := chi.URLParam(r, "foodId")

	if foodID == "" {
		h.logger.Warn("food ID is required")
		h.writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	food, err := h.service.GetFood(ctx, foodID)
	if err != nil {
		if err == repository.ErrFoodNotFound {
			h.logger.Info("food not found", "foodId", foodID)
			h.writeError(w, http.StatusNotFound, "Food not found")
			return
		}

		h.logger.Error("failed to get food", "foodId", foodID, "error", err)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, food)
}

// writeJSON writes a JSON response
func (h *MenuHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response
func (h *MenuHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode error response", "error", err)
	}
}
