// internal/workers/creative/generate-layout/models.go
package generatelayout

import "adsynth-workers/internal/models"

// Input takes a single variant, a list of variants, or both. The single
// variant comes first in the output.
type Input struct {
	Variant  *models.Variant  `json:"variant,omitempty"`
	Variants []models.Variant `json:"variants,omitempty"`
}

type Output struct {
	Layouts []models.LayoutData `json:"layouts"`
	Count   int                 `json:"count"`
}
