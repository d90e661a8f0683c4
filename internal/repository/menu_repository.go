package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nutriplan/diet-optimizer/internal/models"
)

var (
	ErrFoodNotFound = errors.New("food not found")
)

//go:embed dataset.yaml
var defaultDataset []byte

// MenuRepository defines the interface for menu and guideline data access
type MenuRepository interface {
	Foods(ctx context.Context) ([]models.Food, error)
	FoodByID(ctx context.Context, id string) (*models.Food, error)
	Guidelines(ctx context.Context) ([]models.Guideline, error)
}

// dataset is the on-disk document shape shared by the embedded default and
// caller-supplied files.
type dataset struct {
	Foods      []models.Food      `yaml:"foods"`
	Guidelines []models.Guideline `yaml:"guidelines"`
}

// InMemoryMenuRepository implements MenuRepository with in-memory storage
type InMemoryMenuRepository struct {
	foods      []models.Food
	byID       map[string]models.Food
	guidelines []models.Guideline
}

// NewInMemoryMenuRepository creates a repository seeded with the embedded
// reference dataset (9 foods, 7 guidelines).
func NewInMemoryMenuRepository() (*InMemoryMenuRepository, error) {
	var ds dataset
	if err := yaml.Unmarshal(defaultDataset, &ds); err != nil {
		return nil, fmt.Errorf("parse embedded dataset: %w", err)
	}
	return newFromDataset(ds)
}

func newFromDataset(ds dataset) (*InMemoryMenuRepository, error) {
	if err := validateDataset(ds); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Food, len(ds.Foods))
	for _, f := range ds.Foods {
		byID[f.ID] = f
	}

	return &InMemoryMenuRepository{
		foods:      ds.Foods,
		byID:       byID,
		guidelines: ds.Guidelines,
	}, nil
}

func validateDataset(ds dataset) error {
	seen := make(map[string]bool, len(ds.Foods))
	for _, f := range ds.Foods {
		if f.ID == "" {
			return fmt.Errorf("food %q: missing id", f.Name)
		}
		if seen[f.ID] {
			return fmt.Errorf("food %q: duplicate id", f.ID)
		}
		seen[f.ID] = true
		if f.Cost <= 0 {
			return fmt.Errorf("food %q: cost must be positive, got %v", f.ID, f.Cost)
		}
	}

	for _, g := range ds.Guidelines {
		if g.Nutrient == "" {
			return fmt.Errorf("guideline: missing nutrient")
		}
		if !g.Kind.Valid() {
			return fmt.Errorf("guideline on %q: unknown kind %q", g.Nutrient, g.Kind)
		}
	}

	return nil
}

// Foods returns all foods in dataset order
func (r *InMemoryMenuRepository) Foods(ctx context.Context) ([]models.Food, error) {
	foods := make([]models.Food, len(r.foods))
	copy(foods, r.foods)
	return foods, nil
}

// FoodByID returns a food by its ID
func (r *InMemoryMenuRepository) FoodByID(ctx context.Context, id string) (*models.Food, error) {
	food, exists := r.byID[id]
	if !exists {
		return nil, ErrFoodNotFound
	}
	return &food, nil
}

// Guidelines returns the dataset's nutrition guidelines
func (r *InMemoryMenuRepository) Guidelines(ctx context.Context) ([]models.Guideline, error) {
	guidelines := make([]models.Guideline, len(r.guidelines))
	copy(guidelines, r.guidelines)
	return guidelines, nil
}
