// Package combination ranks headline/description pairs by psychological compatibility.
package combination

import (
	"sort"

	"adsynth-workers/internal/models"
)

const (
	// Neutral is the compatibility of a tag pair the matrix does not list.
	Neutral = 0.5

	minWeight = 1
	maxWeight = 10
)

// compatibility is directed: headline tag -> description tag. Missing entries,
// including reverse directions, are Neutral.
var compatibility = map[models.PsychTag]map[models.PsychTag]float64{
	models.TagEmotional: {
		models.TagEmotional:   0.3,
		models.TagLogical:     0.9,
		models.TagUrgent:      0.8,
		models.TagSocialProof: 0.7,
		models.TagBenefit:     0.8,
		models.TagFeature:     0.6,
	},
	models.TagLogical: {
		models.TagLogical:     0.4,
		models.TagEmotional:   0.9,
		models.TagBenefit:     0.8,
		models.TagFeature:     0.7,
		models.TagSocialProof: 0.6,
	},
	models.TagUrgent: {
		models.TagUrgent:      0.2,
		models.TagBenefit:     0.8,
		models.TagSocialProof: 0.7,
		models.TagLogical:     0.6,
	},
	models.TagSocialProof: {
		models.TagSocialProof: 0.3,
		models.TagBenefit:     0.8,
		models.TagEmotional:   0.7,
		models.TagUrgent:      0.6,
	},
	models.TagBenefit: {
		models.TagBenefit:   0.4,
		models.TagFeature:   0.9,
		models.TagEmotional: 0.8,
		models.TagUrgent:    0.7,
	},
	models.TagFeature: {
		models.TagFeature: 0.3,
		models.TagBenefit: 0.9,
		models.TagLogical: 0.7,
	},
}

type Pair struct {
	Headline    models.TaggedElement `json:"headline"`
	Description models.TaggedElement `json:"description"`
	Score       float64              `json:"score"`
}

// Compatibility returns the directed score of a headline tag followed by a description tag.
func Compatibility(headline, description models.PsychTag) float64 {
	if row, ok := compatibility[headline]; ok {
		if v, ok := row[description]; ok {
			return v
		}
	}
	return Neutral
}

// Score averages tag compatibility over the cross product and scales it by the
// normalised combined weight.
func Score(h, d models.TaggedElement) float64 {
	base := Neutral
	if len(h.Tags) > 0 && len(d.Tags) > 0 {
		var sum float64
		for _, ht := range h.Tags {
			for _, dt := range d.Tags {
				sum += Compatibility(ht, dt)
			}
		}
		base = sum / float64(len(h.Tags)*len(d.Tags))
	}

	weightFactor := float64(clampWeight(h.Weight)+clampWeight(d.Weight)) / float64(2*maxWeight)
	return base * (0.7 + weightFactor*0.3)
}

// Curate scores every pair and returns the best limit of them, highest first.
// Equal scores keep headline-major input order. limit <= 0 returns every pair.
func Curate(headlines, descriptions []models.TaggedElement, limit int) []Pair {
	pairs := make([]Pair, 0, len(headlines)*len(descriptions))
	for _, h := range headlines {
		for _, d := range descriptions {
			pairs = append(pairs, Pair{Headline: h, Description: d, Score: Score(h, d)})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})

	if limit > 0 && limit < len(pairs) {
		pairs = pairs[:limit]
	}
	return pairs
}

func clampWeight(w int) int {
	if w < minWeight {
		return minWeight
	}
	if w > maxWeight {
		return maxWeight
	}
	return w
}
