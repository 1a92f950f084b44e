// internal/workers/brand/validate-brand-safety/models.go
package validatebrandsafety

import "adsynth-workers/internal/engine/brandkit"

// Input checks Text against an inline Kit when one is given, otherwise against
// the kit named by KitID (the default kit when empty).
type Input struct {
	Text         string             `json:"text"`
	KitID        string             `json:"kitId,omitempty"`
	Kit          *brandkit.BrandKit `json:"kit,omitempty"`
	GradientType string             `json:"gradientType,omitempty"`
}

type Output struct {
	KitID              string              `json:"kitId"`
	KitSource          string              `json:"kitSource"`
	Safe               bool                `json:"safe"`
	Violations         []string            `json:"violations"`
	ComplianceWarnings []string            `json:"complianceWarnings"`
	Gradient           string              `json:"gradient,omitempty"`
	Typography         brandkit.Typography `json:"typography"`
}
