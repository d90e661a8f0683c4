package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/nutriplan/diet-optimizer/internal/models"
	"github.com/nutriplan/diet-optimizer/internal/repository"
	"github.com/nutriplan/diet-optimizer/internal/service"
	"github.com/nutriplan/diet-optimizer/pkg/logger"
)

func newMenuHandler(t *testing.T) *MenuHandler {
	t.Helper()
	repo, err := repository.NewInMemoryMenuRepository()
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	svc := service.NewMenuService(repo)
	log := logger.New("error")
	return NewMenuHandler(svc, log)
}

func TestListFoods(t *testing.T) {
	handler := newMenuHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	w := httptest.NewRecorder()

	handler.ListFoods(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var foods []models.Food
	if err := json.NewDecoder(w.Body).Decode(&foods); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(foods) != 9 {
		t.Errorf("expected 9 foods, got %d", len(foods))
	}
}

func TestGetFood_Success(t *testing.T) {
	handler := newMenuHandler(t)

	// Create router to handle URL params
	r := chi.NewRouter()
	r.Get("/api/menu/{foodId}", handler.GetFood)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/hamburger", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var food models.Food
	if err := json.NewDecoder(w.Body).Decode(&food); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if food.ID != "hamburger" {
		t.Errorf("expected food ID hamburger, got %s", food.ID)
	}

	if food.Name != "Hamburger" {
		t.Errorf("expected food name 'Hamburger', got %s", food.Name)
	}

	if food.Cost != 2.49 {
		t.Errorf("expected food cost 2.49, got %f", food.Cost)
	}

	if food.Nutrients["protein"] != 24 {
		t.Errorf("expected protein 24, got %f", food.Nutrients["protein"])
	}
}

func TestGetFood_NotFound(t *testing.T) {
	handler := newMenuHandler(t)

	r := chi.NewRouter()
	r.Get("/api/menu/{foodId}", handler.GetFood)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/sushi", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "Food not found" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestListGuidelines(t *testing.T) {
	repo, err := repository.NewInMemoryMenuRepository()
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	handler := NewGuidelineHandler(service.NewMenuService(repo))

	req := httptest.NewRequest(http.MethodGet, "/api/guidelines", nil)
	w := httptest.NewRecorder()

	handler.ListGuidelines(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var guidelines []models.Guideline
	if err := json.NewDecoder(w.Body).Decode(&guidelines); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(guidelines) != 7 {
		t.Errorf("expected 7 guidelines, got %d", len(guidelines))
	}
}
