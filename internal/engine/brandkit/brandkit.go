// Package brandkit holds brand identity bundles and checks copy against their rules.
package brandkit

import (
	"fmt"
	"regexp"
	"strings"

	"adsynth-workers/internal/models"
)

const DefaultID = "default"

type Colors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" yaml:"accent"`
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
}

type Gradient struct {
	Angle int    `json:"angle" yaml:"angle"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

type Fonts struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
}

type Rules struct {
	NeverUseWords      []string `json:"neverUseWords" yaml:"neverUseWords"`
	AlwaysInclude      []string `json:"alwaysInclude" yaml:"alwaysInclude"`
	MaxDiscountPercent int      `json:"maxDiscountPercent" yaml:"maxDiscountPercent"`
	CompetitorNames    []string `json:"competitorNames" yaml:"competitorNames"`
}

type BrandKit struct {
	ID        string              `json:"id" yaml:"id"`
	Name      string              `json:"name" yaml:"name"`
	Colors    Colors              `json:"colors" yaml:"colors"`
	Gradients map[string]Gradient `json:"gradients" yaml:"gradients"`
	Fonts     Fonts               `json:"fonts" yaml:"fonts"`
	Tone      string              `json:"tone" yaml:"tone"`
	Dialect   models.Market       `json:"dialect" yaml:"dialect"`
	Rules     Rules               `json:"rules" yaml:"rules"`
}

type SafetyResult struct {
	Safe       bool     `json:"safe"`
	Violations []string `json:"violations"`
}

type Typography struct {
	Heading   string `json:"heading"`
	Body      string `json:"body"`
	Direction string `json:"direction"`
}

// Default returns a fresh copy of the built-in kit.
func Default() BrandKit {
	return BrandKit{
		ID:   DefaultID,
		Name: "Default Brand",
		Colors: Colors{
			Primary:    "#667EEA",
			Secondary:  "#764BA2",
			Accent:     "#F6AD55",
			Background: "#FFFFFF",
			Text:       "#1A202C",
		},
		Gradients: map[string]Gradient{
			"primary": {Angle: 135, Start: "#667EEA", End: "#764BA2"},
			"warm":    {Angle: 45, Start: "#F6AD55", End: "#ED64A6"},
			"fresh":   {Angle: 90, Start: "#48BB78", End: "#38B2AC"},
		},
		Fonts:   Fonts{Heading: "Cairo", Body: "Tajawal"},
		Tone:    "friendly",
		Dialect: models.MarketMENA,
		Rules: Rules{
			NeverUseWords:      []string{"علاج نهائي", "نتيجة مضمونة 100%", "أرخص منتج", "guaranteed cure"},
			AlwaysInclude:      []string{},
			MaxDiscountPercent: 70,
			CompetitorNames:    []string{},
		},
	}
}

// Clone deep-copies k so callers can mutate the result freely.
func (k BrandKit) Clone() BrandKit {
	out := k
	if k.Gradients != nil {
		out.Gradients = make(map[string]Gradient, len(k.Gradients))
		for name, g := range k.Gradients {
			out.Gradients[name] = g
		}
	}
	out.Rules.NeverUseWords = append([]string(nil), k.Rules.NeverUseWords...)
	out.Rules.AlwaysInclude = append([]string(nil), k.Rules.AlwaysInclude...)
	out.Rules.CompetitorNames = append([]string(nil), k.Rules.CompetitorNames...)
	return out
}

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Validate checks a kit. Every problem is reported.
func Validate(k BrandKit) error {
	var errs models.InputErrors

	if strings.TrimSpace(k.ID) == "" {
		errs = append(errs, &models.InputError{Field: "id", Reason: "required"})
	}
	if strings.TrimSpace(k.Name) == "" {
		errs = append(errs, &models.InputError{Field: "name", Reason: "required"})
	}

	colors := []struct {
		field string
		value string
	}{
		{"colors.primary", k.Colors.Primary},
		{"colors.secondary", k.Colors.Secondary},
		{"colors.accent", k.Colors.Accent},
		{"colors.background", k.Colors.Background},
		{"colors.text", k.Colors.Text},
	}
	for _, c := range colors {
		if !hexColor.MatchString(c.value) {
			errs = append(errs, &models.InputError{Field: c.field, Reason: "must be a hex colour, got \"" + c.value + "\""})
		}
	}

	for _, name := range sortedKeys(k.Gradients) {
		g := k.Gradients[name]
		field := "gradients." + name
		if g.Angle < 0 || g.Angle > 360 {
			errs = append(errs, &models.InputError{Field: field + ".angle", Reason: fmt.Sprintf("must be within 0-360, got %d", g.Angle)})
		}
		if !hexColor.MatchString(g.Start) {
			errs = append(errs, &models.InputError{Field: field + ".start", Reason: "must be a hex colour"})
		}
		if !hexColor.MatchString(g.End) {
			errs = append(errs, &models.InputError{Field: field + ".end", Reason: "must be a hex colour"})
		}
	}

	if k.Dialect != "" && !k.Dialect.Valid() {
		errs = append(errs, &models.InputError{Field: "dialect", Reason: "must be one of egypt, gulf, mena"})
	}
	if k.Rules.MaxDiscountPercent < 0 || k.Rules.MaxDiscountPercent > 100 {
		errs = append(errs, &models.InputError{Field: "rules.maxDiscountPercent", Reason: fmt.Sprintf("must be within 0-100, got %d", k.Rules.MaxDiscountPercent)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateBrandSafety scans text for forbidden words and competitor names,
// ignoring case. It never alters text.
func ValidateBrandSafety(text string, k BrandKit) SafetyResult {
	lower := strings.ToLower(text)
	violations := []string{}

	for _, w := range k.Rules.NeverUseWords {
		if w != "" && strings.Contains(lower, strings.ToLower(w)) {
			violations = append(violations, "forbidden word: "+w)
		}
	}
	for _, c := range k.Rules.CompetitorNames {
		if c != "" && strings.Contains(lower, strings.ToLower(c)) {
			violations = append(violations, "competitor mention: "+c)
		}
	}

	return SafetyResult{Safe: len(violations) == 0, Violations: violations}
}

// GetBrandGradient renders the named gradient as a CSS linear-gradient.
func GetBrandGradient(k BrandKit, gradientType string) (string, error) {
	g, ok := k.Gradients[gradientType]
	if !ok {
		return "", &models.InputError{Field: "gradientType", Reason: "brand kit " + k.ID + " has no gradient \"" + gradientType + "\""}
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s 0%%, %s 100%%)", g.Angle, g.Start, g.End), nil
}

// GetTypography returns the kit fonts. All supported markets read right to left.
func GetTypography(k BrandKit) Typography {
	return Typography{Heading: k.Fonts.Heading, Body: k.Fonts.Body, Direction: "rtl"}
}
