// Package audience tailors copy to the buying motivation of a segment.
package audience

import (
	"strings"

	"adsynth-workers/internal/models"
)

const (
	nowMarker = "الآن"
	nowSuffix = " اطلب الآن!"

	// urgentFrom is the segment urgency level from which a "now" call is appended.
	urgentFrom = 2
)

type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type Segment struct {
	BuyingMotivation models.BuyingMotivation `json:"buyingMotivation"`
	ColorScheme      ColorScheme             `json:"colorScheme"`
	UrgencyLevel     int                     `json:"urgencyLevel"`
	HeadlinePrefix   string                  `json:"headlinePrefix,omitempty"`
}

type Enriched struct {
	Headline    string  `json:"headline"`
	Description string  `json:"description"`
	Segment     Segment `json:"segment"`
}

var segmentOrder = []models.BuyingMotivation{
	models.MotivationPrice,
	models.MotivationQuality,
	models.MotivationStatus,
	models.MotivationConvenience,
}

var segments = map[models.BuyingMotivation]Segment{
	models.MotivationPrice: {
		BuyingMotivation: models.MotivationPrice,
		ColorScheme:      ColorScheme{Primary: "#E53E3E", Secondary: "#FC8181", Background: "#FFF5F5", Text: "#1A202C"},
		UrgencyLevel:     3,
		HeadlinePrefix:   "💰 وفّر أكثر: ",
	},
	models.MotivationQuality: {
		BuyingMotivation: models.MotivationQuality,
		ColorScheme:      ColorScheme{Primary: "#2B6CB0", Secondary: "#90CDF4", Background: "#EBF8FF", Text: "#1A202C"},
		UrgencyLevel:     1,
		HeadlinePrefix:   "✨ جودة مضمونة: ",
	},
	models.MotivationStatus: {
		BuyingMotivation: models.MotivationStatus,
		ColorScheme:      ColorScheme{Primary: "#1A202C", Secondary: "#D69E2E", Background: "#FFFFF0", Text: "#1A202C"},
		UrgencyLevel:     0,
		HeadlinePrefix:   "👑 حصرياً: ",
	},
	models.MotivationConvenience: {
		BuyingMotivation: models.MotivationConvenience,
		ColorScheme:      ColorScheme{Primary: "#38A169", Secondary: "#9AE6B4", Background: "#F0FFF4", Text: "#1A202C"},
		UrgencyLevel:     2,
		HeadlinePrefix:   "⚡ بكل سهولة: ",
	},
}

// Segments returns copies of the four segments in a stable order.
func Segments() []Segment {
	out := make([]Segment, 0, len(segmentOrder))
	for _, m := range segmentOrder {
		out = append(out, segments[m])
	}
	return out
}

// Lookup returns the segment of motivation.
func Lookup(motivation models.BuyingMotivation) (Segment, error) {
	s, ok := segments[motivation]
	if !ok {
		return Segment{}, &models.InputError{Field: "motivation", Reason: "unsupported buying motivation \"" + string(motivation) + "\""}
	}
	return s, nil
}

// Enrich prefixes headline with the segment prefix once and, for urgent segments,
// appends a call to act now when the description has none.
func Enrich(headline, description string, motivation models.BuyingMotivation) (Enriched, error) {
	seg, err := Lookup(motivation)
	if err != nil {
		return Enriched{}, err
	}

	if seg.HeadlinePrefix != "" && !strings.HasPrefix(headline, seg.HeadlinePrefix) {
		headline = seg.HeadlinePrefix + headline
	}
	if seg.UrgencyLevel >= urgentFrom && !strings.Contains(description, nowMarker) {
		description += nowSuffix
	}

	return Enriched{Headline: headline, Description: description, Segment: seg}, nil
}
