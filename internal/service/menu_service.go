package service

import (
	"context"

	"github.com/nutriplan/diet-optimizer/internal/models"
	"github.com/nutriplan/diet-optimizer/internal/repository"
)

// MenuService handles business logic for the menu and its guidelines
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListFoods returns all foods on the menu
func (s *MenuService) ListFoods(ctx context.Context) ([]models.Food, error) {
	return s.repo.Foods(ctx)
}

// GetFood returns a food by ID
func (s *MenuService) GetFood(ctx context.Context, id string) (*models.Food, error) {
	return s.repo.FoodByID(ctx, id)
}

// ListGuidelines returns the dataset's default nutrition guidelines
func (s *MenuService) ListGuidelines(ctx context.Context) ([]models.Guideline, error) {
	return s.repo.Guidelines(ctx)
}
