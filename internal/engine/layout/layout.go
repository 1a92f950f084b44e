// Package layout projects an ad variant onto presentation-agnostic layout data.
package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"adsynth-workers/internal/models"
)

const (
	TopPerformerBadge = "🔥 الأقوى أداءً"
	LimitedOfferBadge = "⏰ عرض محدود"

	// TopPerformerThreshold is the confidence from which a variant earns the top badge.
	TopPerformerThreshold = 85

	comparisonSeparator = " مقابل "
	defaultRightLabel   = "البدائل الأخرى"
)

var layoutTypes = map[models.AngleType]models.LayoutType{
	models.AnglePain:           models.LayoutProblemSolution,
	models.AngleComparison:     models.LayoutComparison,
	models.AngleBoldClaim:      models.LayoutBoldClaim,
	models.AngleTransformation: models.LayoutBeforeAfter,
	models.AngleUrgency:        models.LayoutUrgency,
}

var accentColors = map[models.AngleType]string{
	models.AnglePain:           "#E53E3E",
	models.AngleComparison:     "#3182CE",
	models.AngleBoldClaim:      "#D69E2E",
	models.AngleTransformation: "#38A169",
	models.AngleUrgency:        "#DD6B20",
}

var iconSets = map[models.LayoutType][]string{
	models.LayoutProblemSolution: {"❌", "✅", "💡"},
	models.LayoutComparison:      {"⚖️", "✔️", "✖️"},
	models.LayoutBoldClaim:       {"🏆", "⭐", "💪"},
	models.LayoutBeforeAfter:     {"⬅️", "➡️", "✨"},
	models.LayoutUrgency:         {"⏰", "🔥", "⚡"},
}

// Generate maps v to its layout. Angle types outside the enum fall back to the
// problem/solution layout with a neutral accent.
func Generate(v models.Variant) models.LayoutData {
	lt, ok := layoutTypes[v.Angle.Type]
	if !ok {
		lt = models.LayoutProblemSolution
	}
	accent, ok := accentColors[v.Angle.Type]
	if !ok {
		accent = "#4A5568"
	}

	data := models.LayoutData{
		LayoutType:    lt,
		Headline:      v.PrimaryHook,
		Bullets:       append([]string(nil), v.Bullets[:]...),
		CTA:           v.CTA.Primary,
		Badge:         badge(v),
		IconSet:       append([]string(nil), iconSets[lt]...),
		HighlightWord: HighlightWord(v.PrimaryHook),
		AccentColor:   accent,
	}
	if v.Angle.Type == models.AngleComparison {
		data.Comparison = comparison(v.Angle.PsychologicalTrigger)
	}
	return data
}

// GenerateAll keeps the order of variants.
func GenerateAll(variants []models.Variant) []models.LayoutData {
	out := make([]models.LayoutData, len(variants))
	for i, v := range variants {
		out[i] = Generate(v)
	}
	return out
}

func badge(v models.Variant) string {
	switch {
	case v.ConfidenceScore >= TopPerformerThreshold:
		return TopPerformerBadge
	case v.Angle.Type == models.AngleUrgency:
		return LimitedOfferBadge
	default:
		return ""
	}
}

// HighlightWord returns the longest word of headline counted in runes, first one on ties.
func HighlightWord(headline string) string {
	var best string
	bestLen := 0
	for _, f := range strings.Fields(headline) {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if n := utf8.RuneCountInString(w); n > bestLen {
			best, bestLen = w, n
		}
	}
	return best
}

func comparison(trigger string) *models.Comparison {
	left, right, found := strings.Cut(trigger, comparisonSeparator)
	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if !found || right == "" {
		right = defaultRightLabel
	}
	return &models.Comparison{LeftLabel: left, RightLabel: right}
}
