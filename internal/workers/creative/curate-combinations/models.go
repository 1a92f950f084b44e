// internal/workers/creative/curate-combinations/models.go
package curatecombinations

import (
	"adsynth-workers/internal/engine/combination"
	"adsynth-workers/internal/models"
)

type Input struct {
	Headlines    []models.TaggedElement `json:"headlines"`
	Descriptions []models.TaggedElement `json:"descriptions"`
	Limit        int                    `json:"limit"`
}

type Output struct {
	Pairs []combination.Pair `json:"pairs"`
	// Total is the number of candidate pairs before the limit was applied.
	Total int `json:"total"`
}
