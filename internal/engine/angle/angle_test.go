package angle

import (
	"testing"

	"adsynth-workers/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfile() *models.Profile {
	return &models.Profile{
		ProductName:          "كريم تفتيح",
		ProductDescription:   "كريم للعناية بالبشرة",
		Market:               models.MarketEgypt,
		PriceTier:            models.PriceTierBudget,
		AwarenessLevel:       models.AwarenessCold,
		CompetitionLevel:     models.CompetitionHigh,
		MainBenefit:          "بشرة مشرقة",
		MainPain:             "الهالات السوداء",
		UniqueDifferentiator: "تركيبة طبيعية 100%",
	}
}

func TestRun_FiveAnglesInCanonicalOrder(t *testing.T) {
	markets := []models.Market{models.MarketEgypt, models.MarketGulf, models.MarketMENA}
	tiers := []models.PriceTier{models.PriceTierBudget, models.PriceTierMid, models.PriceTierPremium}

	for _, m := range markets {
		for _, tier := range tiers {
			p := createTestProfile()
			p.Market = m
			p.PriceTier = tier

			angles, err := Run(p)
			require.NoError(t, err)
			require.Len(t, angles, 5)
			for i, a := range angles {
				assert.Equal(t, models.AngleOrder[i], a.Type)
				assert.NotEmpty(t, a.CoreLabel)
				assert.NotEmpty(t, a.InternalRationale)
				assert.NotEmpty(t, a.MarketPositioningHint)
			}
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	first, err := Run(createTestProfile())
	require.NoError(t, err)
	second, err := Run(createTestProfile())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("angles differ between runs (-first +second):\n%s", diff)
	}
}

func TestRun_InterpolatesProfile(t *testing.T) {
	angles, err := Run(createTestProfile())
	require.NoError(t, err)

	assert.Equal(t, "التخلص من الهالات السوداء", angles[0].PsychologicalTrigger)
	assert.Equal(t, "كريم تفتيح مقابل البدائل التقليدية", angles[1].PsychologicalTrigger)
	assert.Contains(t, angles[2].PsychologicalTrigger, "بشرة مشرقة")
	assert.Equal(t, "من الهالات السوداء إلى بشرة مشرقة", angles[3].PsychologicalTrigger)
	assert.Contains(t, angles[4].PsychologicalTrigger, "كريم تفتيح")

	assert.Contains(t, angles[0].InternalRationale, "المصري")
	assert.Contains(t, angles[0].InternalRationale, "عالية")
	assert.Contains(t, angles[0].MarketPositioningHint, "السعر المناسب")
}

func TestRun_SuggestedLayouts(t *testing.T) {
	angles, err := Run(createTestProfile())
	require.NoError(t, err)

	want := []models.LayoutType{
		models.LayoutProblemSolution,
		models.LayoutComparison,
		models.LayoutBoldClaim,
		models.LayoutBeforeAfter,
		models.LayoutUrgency,
	}
	for i, a := range angles {
		assert.Equal(t, want[i], a.SuggestedLayout)
	}
}

func TestRun_InvalidProfile(t *testing.T) {
	p := createTestProfile()
	p.AwarenessLevel = "boiling"

	angles, err := Run(p)
	assert.Nil(t, angles)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	angles, err = Run(nil)
	assert.Nil(t, angles)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
