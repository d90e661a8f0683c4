package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/diet-optimizer/internal/lp"
	"github.com/nutriplan/diet-optimizer/internal/metrics"
	"github.com/nutriplan/diet-optimizer/internal/models"
	"github.com/nutriplan/diet-optimizer/internal/repository"
)

var (
	ErrEmptyMenu        = errors.New("menu contains no foods")
	ErrInvalidGuideline = errors.New("invalid guideline")
	ErrUnknownNutrient  = errors.New("guideline references a nutrient no food provides")
	ErrPlanInfeasible   = errors.New("guidelines admit no meal plan")
	ErrPlanUnbounded    = errors.New("plan cost has no finite minimum")
)

// BackendFactory creates a fresh solver backend for one solve. A backend is
// owned by a single formulation, so every plan gets its own.
type BackendFactory func() lp.Backend

// PlannerService formulates the menu and guidelines as a linear program and
// solves it for the cheapest satisfying meal plan.
type PlannerService struct {
	repo       repository.MenuRepository
	newBackend BackendFactory
	minTol     float64
	log        *slog.Logger
}

// NewPlannerService creates a new planner service. minTolerance is the offset
// applied to minimum guideline bounds; pass lp.DefaultMinTolerance for the
// reference behavior.
func NewPlannerService(repo repository.MenuRepository, factory BackendFactory, minTolerance float64, log *slog.Logger) *PlannerService {
	return &PlannerService{
		repo:       repo,
		newBackend: factory,
		minTol:     minTolerance,
		log:        log,
	}
}

// CreatePlan computes the cost-minimal meal plan satisfying the request's
// guidelines, falling back to the dataset's default guidelines when none are
// supplied.
func (s *PlannerService) CreatePlan(ctx context.Context, req models.PlanRequest) (*models.MealPlan, error) {
	start := time.Now()
	plan, err := s.createPlan(ctx, req)
	metrics.SolveDuration.Observe(time.Since(start).Seconds())
	metrics.PlanSolvesTotal.WithLabelValues(outcomeLabel(err)).Inc()
	return plan, err
}

func (s *PlannerService) createPlan(ctx context.Context, req models.PlanRequest) (*models.MealPlan, error) {
	foods, err := s.repo.Foods(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if len(foods) == 0 {
		return nil, ErrEmptyMenu
	}

	guidelines := req.Guidelines
	if len(guidelines) == 0 {
		guidelines, err = s.repo.Guidelines(ctx)
		if err != nil {
			return nil, fmt.Errorf("load guidelines: %w", err)
		}
	}
	if err := validateGuidelines(guidelines); err != nil {
		return nil, err
	}

	session := lp.NewSession(s.newBackend(), lp.WithMinTolerance(s.minTol))

	for _, f := range foods {
		if _, err := session.Register(f.ID); err != nil {
			return nil, fmt.Errorf("register food: %w", err)
		}
	}

	if err := session.Aggregate(nutrientProperties(foods)); err != nil {
		return nil, fmt.Errorf("aggregate nutrients: %w", err)
	}

	if err := session.ApplyGuidelines(translateGuidelines(guidelines)); err != nil {
		if errors.Is(err, lp.ErrUnknownCategory) {
			return nil, fmt.Errorf("%w: %w", ErrUnknownNutrient, err)
		}
		return nil, err
	}

	costs := make([]lp.ItemCost, len(foods))
	for i, f := range foods {
		costs[i] = lp.ItemCost{Item: f.ID, Cost: f.Cost}
	}
	if err := session.MinimizeCost(costs); err != nil {
		return nil, err
	}

	if err := session.Solve(ctx); err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return nil, fmt.Errorf("%w: %w", ErrPlanInfeasible, err)
		case errors.Is(err, lp.ErrUnbounded):
			return nil, fmt.Errorf("%w: %w", ErrPlanUnbounded, err)
		default:
			return nil, err
		}
	}

	return s.extractPlan(session, foods)
}

// extractPlan reads the solved servings back out of the session and totals
// up cost and nutrients.
func (s *PlannerService) extractPlan(session *lp.Session, foods []models.Food) (*models.MealPlan, error) {
	servings := make([]models.FoodServing, 0, len(foods))
	nutrients := make(map[string]float64)

	for _, f := range foods {
		qty, err := session.Value(f.ID)
		if err != nil {
			return nil, fmt.Errorf("extract servings: %w", err)
		}
		servings = append(servings, models.FoodServing{
			FoodID:   f.ID,
			Name:     f.Name,
			Servings: qty,
		})
		for nutrient, amount := range f.Nutrients {
			nutrients[nutrient] += amount * qty
		}
	}

	totalCost, err := session.Objective()
	if err != nil {
		return nil, fmt.Errorf("extract objective: %w", err)
	}

	plan := &models.MealPlan{
		ID:        uuid.New().String(),
		Servings:  servings,
		Nutrients: nutrients,
		TotalCost: totalCost,
	}

	s.log.Info("meal plan solved",
		"plan_id", plan.ID,
		"total_cost", plan.TotalCost,
		"foods", len(foods),
	)
	return plan, nil
}

// nutrientProperties flattens the foods' nutrient maps into item properties.
// Nutrient keys are sorted per food so the formulation is identical across
// runs.
func nutrientProperties(foods []models.Food) []lp.ItemProperty {
	var props []lp.ItemProperty
	for _, f := range foods {
		nutrients := make([]string, 0, len(f.Nutrients))
		for n := range f.Nutrients {
			nutrients = append(nutrients, n)
		}
		sort.Strings(nutrients)

		for _, n := range nutrients {
			props = append(props, lp.ItemProperty{
				Item:     f.ID,
				Category: n,
				Amount:   f.Nutrients[n],
			})
		}
	}
	return props
}

func validateGuidelines(guidelines []models.Guideline) error {
	for _, g := range guidelines {
		if g.Nutrient == "" {
			return fmt.Errorf("%w: missing nutrient", ErrInvalidGuideline)
		}
		if !g.Kind.Valid() {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidGuideline, g.Kind)
		}
	}
	return nil
}

func translateGuidelines(guidelines []models.Guideline) []lp.Guideline {
	out := make([]lp.Guideline, len(guidelines))
	for i, g := range guidelines {
		kind := lp.Informational
		switch g.Kind {
		case models.KindMin:
			kind = lp.Minimum
		case models.KindMax:
			kind = lp.Maximum
		}
		out[i] = lp.Guideline{Category: g.Nutrient, Bound: g.Bound, Kind: kind}
	}
	return out
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "solved"
	case errors.Is(err, ErrPlanInfeasible):
		return "infeasible"
	case errors.Is(err, ErrPlanUnbounded):
		return "unbounded"
	default:
		return "error"
	}
}
