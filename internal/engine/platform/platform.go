// Package platform adapts copy to the text limits and safe zones of advertising surfaces.
package platform

import (
	"math"
	"strings"

	"adsynth-workers/internal/models"
)

const (
	ellipsis = "..."
	// minWordBreak is the fraction of max below which a word-boundary cut is abandoned.
	minWordBreak = 0.7
)

// Layout is the safe zone expressed in percent of the canvas.
type Layout struct {
	TopPercent    float64 `json:"topPercent"`
	BottomPercent float64 `json:"bottomPercent"`
	LeftPercent   float64 `json:"leftPercent"`
	RightPercent  float64 `json:"rightPercent"`
	ContentWidth  float64 `json:"contentWidthPercent"`
	ContentHeight float64 `json:"contentHeightPercent"`
}

type Adapted struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Spec        Spec   `json:"spec"`
	Layout      Layout `json:"layout"`
}

// Names lists the supported platforms in a stable order.
func Names() []string {
	return append([]string(nil), order...)
}

// Lookup returns the spec of a platform.
func Lookup(name string) (Spec, error) {
	s, ok := specs[name]
	if !ok {
		return Spec{}, &models.InputError{
			Field:  "platform",
			Reason: "unsupported platform " + quote(name) + ", expected one of " + strings.Join(order, ", "),
		}
	}
	return s, nil
}

// Adapt fits headline and description to the platform limits.
func Adapt(headline, description, name string) (Adapted, error) {
	s, err := Lookup(name)
	if err != nil {
		return Adapted{}, err
	}
	return Adapted{
		Headline:    TruncateSmart(headline, s.MaxHeadlineLength),
		Description: TruncateSmart(description, s.MaxDescriptionLength),
		Spec:        s,
		Layout:      CalculateSafeLayout(s),
	}, nil
}

// TruncateSmart shortens text to at most max runes, preferring a word boundary.
// When the last usable space sits before 70% of max the text is hard-cut instead.
func TruncateSmart(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	if max <= 0 {
		return ""
	}
	if max <= len(ellipsis) {
		return string(r[:max])
	}

	limit := max - len(ellipsis)
	cut := -1
	for i := limit; i >= 0; i-- {
		if r[i] == ' ' {
			cut = i
			break
		}
	}
	if cut < 0 || float64(cut) < float64(max)*minWordBreak {
		return string(r[:limit]) + ellipsis
	}
	return strings.TrimRight(string(r[:cut]), " ") + ellipsis
}

// CalculateSafeLayout converts the pixel safe zone of s into canvas percentages.
func CalculateSafeLayout(s Spec) Layout {
	if s.Width <= 0 || s.Height <= 0 {
		return Layout{ContentWidth: 100, ContentHeight: 100}
	}
	top := pct(s.SafeZone.Top, s.Height)
	bottom := pct(s.SafeZone.Bottom, s.Height)
	left := pct(s.SafeZone.Left, s.Width)
	right := pct(s.SafeZone.Right, s.Width)
	return Layout{
		TopPercent:    top,
		BottomPercent: bottom,
		LeftPercent:   left,
		RightPercent:  right,
		ContentWidth:  round2(100 - left - right),
		ContentHeight: round2(100 - top - bottom),
	}
}

func pct(px, total int) float64 {
	return round2(float64(px) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func quote(s string) string {
	return "\"" + s + "\""
}
