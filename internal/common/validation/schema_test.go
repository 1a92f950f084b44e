package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() map[string]interface{} {
	return map[string]interface{}{
		"productName":          "كريم تفتيح",
		"productDescription":   "كريم طبيعي لتفتيح البشرة",
		"market":               "egypt",
		"priceTier":            "budget",
		"awarenessLevel":       "cold",
		"competitionLevel":     "medium",
		"mainBenefit":          "بشرة أفتح",
		"mainPain":             "الهالات السوداء",
		"uniqueDifferentiator": "مكونات طبيعية",
	}
}

func TestProfileSchema_Valid(t *testing.T) {
	result, err := ProfileSchema.Validate(validProfile())
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestProfileSchema_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p map[string]interface{})
		expected []string
	}{
		{
			name:     "missing field",
			mutate:   func(p map[string]interface{}) { delete(p, "mainPain") },
			expected: []string{"mainPain"},
		},
		{
			name:     "enum outside its set",
			mutate:   func(p map[string]interface{}) { p["market"] = "levant" },
			expected: []string{"market"},
		},
		{
			name:     "blank string",
			mutate:   func(p map[string]interface{}) { p["productName"] = "   " },
			expected: []string{"productName"},
		},
		{
			name: "several problems at once",
			mutate: func(p map[string]interface{}) {
				p["priceTier"] = "luxury"
				delete(p, "uniqueDifferentiator")
			},
			expected: []string{"priceTier", "uniqueDifferentiator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)

			result, err := ProfileSchema.Validate(p)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.expected, result.Fields())
		})
	}
}

func TestProfileSchema_ValidateJSON(t *testing.T) {
	result, err := ProfileSchema.ValidateJSON(`{"productName": "x"}`)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Fields(), "market")

	_, err = ProfileSchema.ValidateJSON(`{not json`)
	assert.Error(t, err)
}

func TestCompile_RejectsBrokenSchema(t *testing.T) {
	_, err := Compile("broken", map[string]interface{}{"type": 12})
	assert.Error(t, err)
}
