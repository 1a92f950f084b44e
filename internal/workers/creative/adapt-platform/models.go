// internal/workers/creative/adapt-platform/models.go
package adaptplatform

import (
	"adsynth-workers/internal/engine/audience"
	"adsynth-workers/internal/engine/platform"
)

// Input names one platform, several, or none. No platform at all means every
// supported platform. A motivation enriches the copy before it is adapted.
type Input struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Platform    string   `json:"platform,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	Motivation  string   `json:"motivation,omitempty"`
}

type Adaptation struct {
	Platform    string          `json:"platform"`
	Headline    string          `json:"headline"`
	Description string          `json:"description"`
	Spec        platform.Spec   `json:"spec"`
	Layout      platform.Layout `json:"layout"`
}

type Output struct {
	Adaptations []Adaptation      `json:"adaptations"`
	Segment     *audience.Segment `json:"segment,omitempty"`
}
