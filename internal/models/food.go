package models

// Food is a selectable dish with a per-serving cost and its nutrient content
type Food struct {
	ID        string             `json:"id" yaml:"id"`
	Name      string             `json:"name" yaml:"name"`
	Cost      float64            `json:"cost" yaml:"cost"`
	Nutrients map[string]float64 `json:"nutrients" yaml:"nutrients"`
}
