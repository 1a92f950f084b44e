package variation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"adsynth-workers/internal/engine/angle"
	"adsynth-workers/internal/engine/cta"
	"adsynth-workers/internal/engine/hookscore"
	testingsuggest "adsynth-workers/internal/engine/testing"
	"adsynth-workers/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// ==========================
// Helpers
// ==========================

func createTestProfile() *models.Profile {
	return &models.Profile{
		ProductName:          "كريم تفتيح",
		ProductDescription:   "كريم طبيعي لتفتيح البشرة وتوحيد لونها",
		Market:               models.MarketEgypt,
		PriceTier:            models.PriceTierBudget,
		AwarenessLevel:       models.AwarenessCold,
		CompetitionLevel:     models.CompetitionHigh,
		MainBenefit:          "بشرة مشرقة",
		MainPain:             "الهالات السوداء",
		UniqueDifferentiator: "تركيبة طبيعية 100%",
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func runDefault(t *testing.T, p *models.Profile) *models.AdSet {
	t.Helper()
	angles, err := angle.Run(p)
	require.NoError(t, err)
	set, err := New(WithClock(fixedClock)).Run(p, angles)
	require.NoError(t, err)
	return set
}

// ==========================
// End-to-end
// ==========================

func TestRun_EndToEndScenario(t *testing.T) {
	set := runDefault(t, createTestProfile())

	pain := set.Variants[0]
	require.Equal(t, models.AnglePain, pain.Angle.Type)
	assert.Contains(t, pain.PrimaryHook, "الهالات السوداء")
	assert.True(t, strings.Contains(pain.PrimaryHook, "تعبت") || strings.Contains(pain.PrimaryHook, "لا تزال"))

	primary, _, err := cta.Lookup(models.MarketEgypt, models.AwarenessCold, models.PriceTierBudget)
	require.NoError(t, err)
	assert.Equal(t, primary, pain.CTA.Primary)

	// 60 - 5 (high competition) + 8 (pain) + round(49 * 0.15)
	assert.Equal(t, 49, pain.HookScore.Total)
	assert.Equal(t, 70, pain.ConfidenceScore)

	assert.Equal(t, fixedClock(), set.GeneratedAt)
	assert.Equal(t, *createTestProfile(), set.Profile)
}

func TestRun_VariantShape(t *testing.T) {
	markets := []models.Market{models.MarketEgypt, models.MarketGulf, models.MarketMENA}
	awareness := []models.AwarenessLevel{models.AwarenessCold, models.AwarenessWarm, models.AwarenessHot}
	competition := []models.CompetitionLevel{models.CompetitionLow, models.CompetitionMedium, models.CompetitionHigh}

	for _, m := range markets {
		for _, aw := range awareness {
			for _, c := range competition {
				p := createTestProfile()
				p.Market, p.AwarenessLevel, p.CompetitionLevel = m, aw, c

				set := runDefault(t, p)
				for i, v := range set.Variants {
					assert.Equal(t, models.AngleOrder[i], v.Angle.Type)
					assert.GreaterOrEqual(t, v.ConfidenceScore, 30)
					assert.LessOrEqual(t, v.ConfidenceScore, 99)
					for _, b := range v.Bullets {
						assert.True(t, strings.HasPrefix(b, "✔ "))
					}
					for _, h := range v.HookVariations {
						assert.NotEmpty(t, h)
					}
					assert.Equal(t, v.HookScore.Sum(), v.HookScore.Total)
					assert.Equal(t, v.TestingSuggestion.SuggestedAudience, v.RecommendedAudience)
					assert.Equal(t, v.Angle.PsychologicalTrigger, v.EmotionalTrigger)
					assert.True(t, strings.HasPrefix(v.BodyExpanded, v.BodyShort))
					assert.False(t, testingsuggest.IsFallback(v.TestingSuggestion))
				}
			}
		}
	}
}

func TestRun_PrimaryHookIsScoredFinalHook(t *testing.T) {
	p := createTestProfile()
	set := runDefault(t, p)

	for _, v := range set.Variants {
		hooks, generic := hooksFor(v.Angle.Type, p)
		require.False(t, generic)

		scored, err := hookscore.Run(hooks[0], p.Market)
		require.NoError(t, err)
		assert.Equal(t, scored.FinalHook, v.PrimaryHook)
		assert.Equal(t, scored.Score, v.HookScore)
	}
}

func TestRun_Deterministic(t *testing.T) {
	first := runDefault(t, createTestProfile())
	second := runDefault(t, createTestProfile())

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ad sets differ (-first +second):\n%s", diff)
	}
}

// ==========================
// Failure semantics
// ==========================

func TestRun_PerAngleFailureAbortsWholeSet(t *testing.T) {
	boom := errors.New("boom")
	e := New(WithClock(fixedClock))
	e.optimize = func(m models.Market, a models.AwarenessLevel, tier models.PriceTier, at models.AngleType) (models.CTAResult, error) {
		if at == models.AngleTransformation {
			return models.CTAResult{}, boom
		}
		return cta.Run(m, a, tier, at)
	}

	p := createTestProfile()
	angles, err := angle.Run(p)
	require.NoError(t, err)

	set, err := e.Run(p, angles)
	assert.Nil(t, set)
	require.Error(t, err)

	var setErr *AdSetError
	require.ErrorAs(t, err, &setErr)
	assert.Equal(t, models.AngleTransformation, setErr.Angle)
	assert.ErrorIs(t, err, boom)
}

func TestRun_LookupGapPropagates(t *testing.T) {
	e := New()
	e.scoreHook = func(string, models.Market) (models.HookResult, error) {
		return models.HookResult{}, &models.LookupError{Table: "test", Key: "x"}
	}

	p := createTestProfile()
	angles, _ := angle.Run(p)

	_, err := e.Run(p, angles)
	assert.ErrorIs(t, err, models.ErrLookupGap)
}

func TestRun_RejectsInvalidInput(t *testing.T) {
	p := createTestProfile()
	angles, err := angle.Run(p)
	require.NoError(t, err)

	tests := []struct {
		name    string
		profile *models.Profile
		angles  []models.Angle
	}{
		{"nil profile", nil, angles},
		{"missing pain", &models.Profile{ProductName: "x"}, angles},
		{"four angles", p, angles[:4]},
		{"wrong order", p, []models.Angle{angles[1], angles[0], angles[2], angles[3], angles[4]}},
		{"no angles", p, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := New().Run(tt.profile, tt.angles)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

// ==========================
// Templates
// ==========================

func TestHooksFor_GenericFallback(t *testing.T) {
	p := createTestProfile()

	hooks, generic := hooksFor("curiosity", p)
	assert.True(t, generic)
	assert.Contains(t, hooks[0], p.ProductName)

	for _, at := range models.AngleOrder {
		_, generic := hooksFor(at, p)
		assert.False(t, generic, "angle %s fell back to generic hooks", at)
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name      string
		awareness models.AwarenessLevel
		comp      models.CompetitionLevel
		angle     models.AngleType
		hook      int
		expected  int
	}{
		{"cold medium comparison", models.AwarenessCold, models.CompetitionMedium, models.AngleComparison, 0, 60},
		{"warm low pain", models.AwarenessWarm, models.CompetitionLow, models.AnglePain, 50, 94},
		{"hot low urgency clamps", models.AwarenessHot, models.CompetitionLow, models.AngleUrgency, 100, 99},
		{"cold high bold claim", models.AwarenessCold, models.CompetitionHigh, models.AngleBoldClaim, 42, 61},
		{"rounding half up", models.AwarenessCold, models.CompetitionMedium, models.AngleComparison, 10, 62},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &models.Profile{AwarenessLevel: tt.awareness, CompetitionLevel: tt.comp}
			assert.Equal(t, tt.expected, Confidence(p, tt.angle, tt.hook))
		})
	}
}

// ==========================
// Concurrency
// ==========================

func TestGenerate_ParallelProfiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	var g errgroup.Group
	results := make([]*models.AdSet, 12)
	for i := range results {
		i := i
		g.Go(func() error {
			p := createTestProfile()
			p.ProductName = fmt.Sprintf("منتج %d", i)
			set, err := Generate(p)
			if err != nil {
				return err
			}
			results[i] = set
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, set := range results {
		require.NotNil(t, set)
		assert.Equal(t, fmt.Sprintf("منتج %d", i), set.Profile.ProductName)
		assert.Contains(t, set.Variants[1].PrimaryHook, set.Profile.ProductName)
	}
}
