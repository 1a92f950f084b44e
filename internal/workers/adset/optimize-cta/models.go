// internal/workers/adset/optimize-cta/models.go
package optimizecta

import "adsynth-workers/internal/models"

// Input names the CTA matrix cell directly. When a profile is supplied, empty
// market, awareness and tier fields are taken from it and a testing suggestion
// is built for the angle.
type Input struct {
	Market         string          `json:"market"`
	AwarenessLevel string          `json:"awarenessLevel"`
	PriceTier      string          `json:"priceTier"`
	AngleType      string          `json:"angleType"`
	Profile        *models.Profile `json:"profile,omitempty"`
}

type Output struct {
	CTA               models.CTAResult          `json:"cta"`
	TestingSuggestion *models.TestingSuggestion `json:"testingSuggestion,omitempty"`
}
