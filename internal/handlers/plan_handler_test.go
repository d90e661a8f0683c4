package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nutriplan/diet-optimizer/internal/lp"
	"github.com/nutriplan/diet-optimizer/internal/models"
	"github.com/nutriplan/diet-optimizer/internal/repository"
	"github.com/nutriplan/diet-optimizer/internal/service"
	"github.com/nutriplan/diet-optimizer/internal/solver"
	"github.com/nutriplan/diet-optimizer/pkg/logger"
)

func newPlanHandler(t *testing.T) *PlanHandler {
	t.Helper()
	repo, err := repository.NewInMemoryMenuRepository()
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}
	log := logger.New("error")
	planner := service.NewPlannerService(repo, func() lp.Backend {
		return solver.NewSimplex()
	}, lp.DefaultMinTolerance, log)
	return NewPlanHandler(planner, log)
}

func postPlan(t *testing.T, handler *PlanHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.CreatePlan(w, req)
	return w
}

func TestCreatePlan_DefaultGuidelines(t *testing.T) {
	handler := newPlanHandler(t)

	w := postPlan(t, handler, []byte(`{}`))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var plan models.MealPlan
	if err := json.NewDecoder(w.Body).Decode(&plan); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if plan.ID == "" {
		t.Error("expected a plan ID")
	}

	if math.Abs(plan.TotalCost-11.828870752513227) > 1e-6 {
		t.Errorf("expected total cost 11.8289, got %f", plan.TotalCost)
	}

	if len(plan.Servings) != 9 {
		t.Errorf("expected a serving entry per food, got %d", len(plan.Servings))
	}

	var positive int
	for _, s := range plan.Servings {
		if s.Servings < 0 {
			t.Errorf("serving for %s is negative: %f", s.FoodID, s.Servings)
		}
		if s.Servings > 0 {
			positive++
		}
	}
	if positive == 0 {
		t.Error("expected at least one positive serving")
	}

	if plan.Nutrients["calories"] < 1800 {
		t.Errorf("calories below minimum: %f", plan.Nutrients["calories"])
	}
}

func TestCreatePlan_CustomGuidelines(t *testing.T) {
	handler := newPlanHandler(t)

	reqBody := models.PlanRequest{
		Guidelines: []models.Guideline{
			{Nutrient: "calories", Bound: 500, Kind: models.KindMin},
			{Nutrient: "sodium", Bound: 0, Kind: models.KindInfo},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	w := postPlan(t, handler, body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var plan models.MealPlan
	if err := json.NewDecoder(w.Body).Decode(&plan); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if plan.Nutrients["calories"] < 500 {
		t.Errorf("calories below minimum: %f", plan.Nutrients["calories"])
	}
}

func TestCreatePlan_InvalidBody(t *testing.T) {
	handler := newPlanHandler(t)

	w := postPlan(t, handler, []byte(`not json`))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreatePlan_InvalidGuideline(t *testing.T) {
	handler := newPlanHandler(t)

	body := []byte(`{"guidelines":[{"nutrient":"calories","bound":100,"kind":"atleast"}]}`)
	w := postPlan(t, handler, body)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreatePlan_UnknownNutrient(t *testing.T) {
	handler := newPlanHandler(t)

	body := []byte(`{"guidelines":[{"nutrient":"vitamin-z","bound":10,"kind":"min"}]}`)
	w := postPlan(t, handler, body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "Guideline references an unknown nutrient" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestCreatePlan_Infeasible(t *testing.T) {
	handler := newPlanHandler(t)

	body := []byte(`{"guidelines":[{"nutrient":"calories","bound":1000000,"kind":"min"},{"nutrient":"sodium","bound":100,"kind":"max"}]}`)
	w := postPlan(t, handler, body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["error"] != "Guidelines admit no meal plan" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}
