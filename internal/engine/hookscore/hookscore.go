// Package hookscore scores ad hooks on six weighted dimensions and repairs weak ones.
package hookscore

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"adsynth-workers/internal/models"
)

const (
	// EnhancementThreshold is the total below which a hook gets rewritten.
	EnhancementThreshold = 75
	// MaxHookLength is measured in characters (runes), not bytes.
	MaxHookLength = 120

	ellipsis = "..."
)

var (
	painMarkers = []string{"تعبت", "لا تزال", "مشكلة", "تعاني", "زهقت", "معاناة", "خايف", "مش قادر"}

	urgencyMarkers = []string{"الآن", "دلوقتي", "الحين", "لفترة محدودة", "آخر فرصة", "اليوم", "النهارده", "ينتهي", "قبل ما يخلص"}

	egyptDialect = []string{"دلوقتي", "عايز", "مش", "إزاي", "ليه", "كده", "النهارده"}
	gulfDialect  = []string{"الحين", "تبي", "وايد", "شلون", "زين", "ليش"}

	urgencyPrefix = map[models.Market]string{
		models.MarketEgypt: "🔥 لفترة محدودة: ",
		models.MarketGulf:  "🔥 لفترة محدودة الحين: ",
		models.MarketMENA:  "🔥 عرض لفترة محدودة: ",
	}
)

// Run scores hook for market and, when the total is below the threshold, performs a
// single enhancement pass. The enhanced hook is not re-scored.
func Run(hook string, market models.Market) (models.HookResult, error) {
	if !market.Valid() {
		return models.HookResult{}, &models.InputError{Field: "market", Reason: "unsupported market " + string(market)}
	}
	if strings.TrimSpace(hook) == "" {
		return models.HookResult{}, &models.InputError{Field: "hook", Reason: "required"}
	}

	a := analyze(hook)
	score := a.score(market)

	result := models.HookResult{
		OriginalHook: hook,
		FinalHook:    hook,
		Score:        score,
	}
	if score.WasEnhanced {
		result.FinalHook = enhance(hook, market, a)
	}
	return result, nil
}

// Score computes the breakdown without rewriting anything.
func Score(hook string, market models.Market) models.HookScore {
	return analyze(hook).score(market)
}

type analysis struct {
	text       string
	tokens     []string
	words      int
	runes      int
	hasDigit   bool
	hasPercent bool
	hasQuery   bool
}

func analyze(hook string) analysis {
	a := analysis{
		text:  hook,
		words: len(strings.Fields(hook)),
		runes: utf8.RuneCountInString(hook),
	}
	for _, f := range strings.Fields(hook) {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if tok != "" {
			a.tokens = append(a.tokens, tok)
		}
	}
	for _, r := range hook {
		switch {
		case unicode.IsDigit(r):
			a.hasDigit = true
		case r == '%' || r == '٪':
			a.hasPercent = true
		case r == '?' || r == '؟':
			a.hasQuery = true
		}
	}
	return a
}

func (a analysis) score(market models.Market) models.HookScore {
	s := models.HookScore{
		Clarity:           a.clarity(),
		Specificity:       a.specificity(),
		EmotionalStrength: a.emotionalStrength(),
		Urgency:           a.urgency(),
		MarketAlignment:   a.marketAlignment(market),
		Simplicity:        a.simplicity(),
	}
	s.Total = s.Sum()
	s.WasEnhanced = s.Total < EnhancementThreshold
	return s
}

// clarity rewards a scannable word count and penalises hooks that overflow the limit.
func (a analysis) clarity() int {
	var score int
	switch {
	case a.words < 4:
		score = 10
	case a.words <= 12:
		score = 20
	case a.words <= 18:
		score = 14
	default:
		score = 6
	}
	if a.runes > MaxHookLength {
		score -= 6
	}
	return clamp(score, 0, 20)
}

func (a analysis) specificity() int {
	score := 4
	if a.hasDigit {
		score += 10
	}
	if a.hasPercent {
		score += 6
	}
	return clamp(score, 0, 20)
}

func (a analysis) emotionalStrength() int {
	score := clamp(7*a.countMarkers(painMarkers), 0, 14)
	if a.hasQuery {
		score += 6
	}
	return clamp(score, 0, 20)
}

func (a analysis) urgency() int {
	return clamp(10*a.countMarkers(urgencyMarkers), 0, 20)
}

func (a analysis) marketAlignment(market models.Market) int {
	switch market {
	case models.MarketEgypt:
		return clamp(2+4*a.countMarkers(egyptDialect), 0, 10)
	case models.MarketGulf:
		return clamp(2+4*a.countMarkers(gulfDialect), 0, 10)
	default:
		// Neutral Arabic fits the pan-regional market best.
		if a.countMarkers(egyptDialect) == 0 && a.countMarkers(gulfDialect) == 0 {
			return 8
		}
		return 4
	}
}

func (a analysis) simplicity() int {
	switch {
	case a.words <= 10:
		return 10
	case a.words <= 15:
		return 7
	case a.words <= 20:
		return 4
	default:
		return 2
	}
}

func (a analysis) hasPain() bool    { return a.countMarkers(painMarkers) > 0 }
func (a analysis) hasUrgency() bool { return a.countMarkers(urgencyMarkers) > 0 }

// countMarkers counts distinct markers present in the text. Multi-word markers match as
// substrings; short single words must match a whole token so that e.g. "مش" does not
// fire inside "مشكلة".
func (a analysis) countMarkers(markers []string) int {
	n := 0
	for _, m := range markers {
		if a.contains(m) {
			n++
		}
	}
	return n
}

func (a analysis) contains(marker string) bool {
	if strings.Contains(marker, " ") {
		return strings.Contains(a.text, marker)
	}
	short := utf8.RuneCountInString(marker) < 4
	for _, tok := range a.tokens {
		if tok == marker {
			return true
		}
		if !short && strings.Contains(tok, marker) {
			return true
		}
	}
	return false
}

func enhance(hook string, market models.Market, a analysis) string {
	out := hook
	if !a.hasUrgency() && !a.hasPain() {
		out = urgencyPrefix[market] + out
	}
	if utf8.RuneCountInString(out) > MaxHookLength {
		r := []rune(out)
		out = string(r[:MaxHookLength-len(ellipsis)]) + ellipsis
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
