// internal/models/adset.go
package models

import "time"

// Angle is one psychological framing of the product, derived from a Profile.
type Angle struct {
	Type                  AngleType  `json:"type"`
	CoreLabel             string     `json:"coreLabel"`
	PsychologicalTrigger  string     `json:"psychologicalTrigger"`
	InternalRationale     string     `json:"internalRationale"`
	SuggestedLayout       LayoutType `json:"suggestedLayout"`
	MarketPositioningHint string     `json:"marketPositioningHint"`
}

type HookScore struct {
	Clarity           int  `json:"clarity"`
	Specificity       int  `json:"specificity"`
	EmotionalStrength int  `json:"emotionalStrength"`
	Urgency           int  `json:"urgency"`
	MarketAlignment   int  `json:"marketAlignment"`
	Simplicity        int  `json:"simplicity"`
	Total             int  `json:"total"`
	WasEnhanced       bool `json:"wasEnhanced"`
}

// Sum recomputes the total from the six sub-scores.
func (s HookScore) Sum() int {
	return s.Clarity + s.Specificity + s.EmotionalStrength + s.Urgency + s.MarketAlignment + s.Simplicity
}

type HookResult struct {
	OriginalHook string    `json:"originalHook"`
	FinalHook    string    `json:"finalHook"`
	Score        HookScore `json:"score"`
}

type CTAResult struct {
	Primary      string       `json:"primary"`
	Variants     [2]string    `json:"variants"`
	UrgencyLevel UrgencyLevel `json:"urgencyLevel"`
}

type TestingSuggestion struct {
	SuggestedObjective    string `json:"suggestedObjective"`
	SuggestedAudience     string `json:"suggestedAudience"`
	BudgetSplitSuggestion string `json:"budgetSplitSuggestion"`
	TestingNote           string `json:"testingNote"`
}

type Variant struct {
	Angle               Angle             `json:"angle"`
	PrimaryHook         string            `json:"primaryHook"`
	HookVariations      [3]string         `json:"hookVariations"`
	HookScore           HookScore         `json:"hookScore"`
	BodyShort           string            `json:"bodyShort"`
	BodyExpanded        string            `json:"bodyExpanded"`
	CTA                 CTAResult         `json:"cta"`
	Bullets             [3]string         `json:"bullets"`
	EmotionalTrigger    string            `json:"emotionalTrigger"`
	RecommendedAudience string            `json:"recommendedAudience"`
	ConfidenceScore     int               `json:"confidenceScore"`
	TestingSuggestion   TestingSuggestion `json:"testingSuggestion"`
}

// AdSet is always complete: five variants in canonical angle order.
type AdSet struct {
	Profile     Profile    `json:"profile"`
	Variants    [5]Variant `json:"variants"`
	GeneratedAt time.Time  `json:"generatedAt"`
}

type Comparison struct {
	LeftLabel  string `json:"leftLabel"`
	RightLabel string `json:"rightLabel"`
}

// LayoutData is the presentation-agnostic projection of one Variant.
type LayoutData struct {
	LayoutType    LayoutType  `json:"layoutType"`
	Headline      string      `json:"headline"`
	Bullets       []string    `json:"bullets"`
	CTA           string      `json:"cta"`
	Badge         string      `json:"badge,omitempty"`
	Comparison    *Comparison `json:"comparison,omitempty"`
	IconSet       []string    `json:"iconSet,omitempty"`
	HighlightWord string      `json:"highlightWord,omitempty"`
	AccentColor   string      `json:"accentColor"`
}

// TaggedElement is a piece of ad copy annotated for combinatorial pairing.
type TaggedElement struct {
	Content string     `json:"content"`
	Tags    []PsychTag `json:"tags"`
	Weight  int        `json:"weight"`
}
