package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		ProductName:          "كريم تفتيح",
		ProductDescription:   "كريم للعناية بالبشرة",
		Market:               MarketEgypt,
		PriceTier:            PriceTierBudget,
		AwarenessLevel:       AwarenessCold,
		CompetitionLevel:     CompetitionHigh,
		MainBenefit:          "بشرة مشرقة",
		MainPain:             "الهالات السوداء",
		UniqueDifferentiator: "تركيبة طبيعية 100%",
	}
}

func TestProfile_Validate_Success(t *testing.T) {
	p := validProfile()
	assert.NoError(t, p.Validate())
}

func TestProfile_Validate_ReportsEveryField(t *testing.T) {
	p := validProfile()
	p.ProductName = "  "
	p.MainPain = ""
	p.Market = "europe"
	p.CompetitionLevel = "extreme"

	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var errs InputErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{"productName", "mainPain", "market", "competitionLevel"}, errs.Fields())
}

func TestProfile_Validate_Nil(t *testing.T) {
	var p *Profile
	err := p.Validate()
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParseHelpers(t *testing.T) {
	m, err := ParseMarket("gulf")
	assert.NoError(t, err)
	assert.Equal(t, MarketGulf, m)

	_, err = ParseMarket("asia")
	var inErr *InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, "market", inErr.Field)

	_, err = ParseAwareness("lukewarm")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParsePriceTier("luxury")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseAngleType("fear")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseMotivation("fun")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarket_DisplayName(t *testing.T) {
	assert.Equal(t, "المصري", MarketEgypt.DisplayName())
	assert.Equal(t, "الخليجي", MarketGulf.DisplayName())
	assert.Equal(t, "العربي", MarketMENA.DisplayName())
}

func TestHookScore_Sum(t *testing.T) {
	s := HookScore{Clarity: 20, Specificity: 14, EmotionalStrength: 13, Urgency: 10, MarketAlignment: 6, Simplicity: 10}
	assert.Equal(t, 73, s.Sum())
}
