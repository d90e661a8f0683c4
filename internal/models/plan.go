package models

// PlanRequest asks for a cost-minimal meal plan. When Guidelines is empty the
// dataset's default guidelines are used.
type PlanRequest struct {
	Guidelines []Guideline `json:"guidelines,omitempty"`
}

// FoodServing is the solved quantity of one food in a plan.
type FoodServing struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Servings float64 `json:"servings"`
}

// MealPlan is a solved plan: non-negative servings per food, the nutrient
// totals they add up to, and the minimized total cost.
type MealPlan struct {
	ID        string             `json:"id"`
	Servings  []FoodServing      `json:"servings"`
	Nutrients map[string]float64 `json:"nutrients"`
	TotalCost float64            `json:"totalCost"`
}
