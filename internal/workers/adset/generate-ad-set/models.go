// internal/workers/adset/generate-ad-set/models.go
package generateadset

import "adsynth-workers/internal/models"

// Input carries the raw profile as received from the process so it can be
// schema-validated before it is decoded.
type Input struct {
	Profile        map[string]interface{} `json:"profile"`
	IncludeLayouts bool                   `json:"includeLayouts"`
}

type Output struct {
	AdSetID     string              `json:"adSetId,omitempty"`
	ProfileHash string              `json:"profileHash"`
	AdSet       *models.AdSet       `json:"adSet"`
	Layouts     []models.LayoutData `json:"layouts,omitempty"`
	Cached      bool                `json:"cached"`
}
