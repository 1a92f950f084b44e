// internal/workers/creative/enrich-segment/models.go
package enrichsegment

import "adsynth-workers/internal/engine/audience"

type Input struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Motivation  string `json:"motivation"`
}

type Output struct {
	Headline    string           `json:"headline"`
	Description string           `json:"description"`
	Segment     audience.Segment `json:"segment"`
}
