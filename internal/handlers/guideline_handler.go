package handlers

import (
	"context"
	"net/http"

	"github.com/nutriplan/diet-optimizer/internal/models"
)

// guidelineLister is the interface for reading the default guidelines
type guidelineLister interface {
	ListGuidelines(ctx context.Context) ([]models.Guideline, error)
}

// GuidelineHandler handles HTTP requests for the dataset's guidelines
type GuidelineHandler struct {
	menu guidelineLister
}

// NewGuidelineHandler creates a new GuidelineHandler
func NewGuidelineHandler(menu guidelineLister) *GuidelineHandler {
	return &GuidelineHandler{
		menu: menu,
	}
}

// ListGuidelines handles GET /api/guidelines
// Returns the default nutrition guidelines applied when a plan request
// carries none of its own
func (h *GuidelineHandler) ListGuidelines(w http.ResponseWriter, r *http.Request) {
	guidelines, err := h.menu.ListGuidelines(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, guidelines)
}
