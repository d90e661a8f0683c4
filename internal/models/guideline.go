package models

// GuidelineKind states how a guideline's bound applies to the aggregated
// nutrient total.
type GuidelineKind string

const (
	// KindMin requires the nutrient total to reach the bound.
	KindMin GuidelineKind = "min"
	// KindMax caps the nutrient total at the bound.
	KindMax GuidelineKind = "max"
	// KindInfo is informational only and never constrains a plan.
	KindInfo GuidelineKind = "info"
)

// Valid reports whether k is one of the known kinds.
func (k GuidelineKind) Valid() bool {
	switch k {
	case KindMin, KindMax, KindInfo:
		return true
	default:
		return false
	}
}

// Guideline bounds the total of one nutrient across a whole meal plan.
type Guideline struct {
	Nutrient string        `json:"nutrient" yaml:"nutrient"`
	Bound    float64       `json:"bound" yaml:"bound"`
	Kind     GuidelineKind `json:"kind" yaml:"kind"`
}
