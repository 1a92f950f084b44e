// internal/workers/export/export-ads-csv/handler_test.go
package exportadscsv

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	apperrors "adsynth-workers/internal/common/errors"
	"adsynth-workers/internal/common/logger"
	"adsynth-workers/internal/engine/export"
	"adsynth-workers/internal/engine/variation"
	"adsynth-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	cfg := LoadConfig()
	cfg.Clock = func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) }
	return cfg
}

func createTestAd() export.Ad {
	return export.Ad{
		Platform:         "instagram_feed",
		Headline:         "وداعاً للهالات السوداء",
		PrimaryText:      "كريم طبيعي, بدون آثار جانبية",
		Description:      "نتيجة من أول أسبوع",
		CTA:              "اطلب الآن",
		ImageURL:         "https://cdn.example.com/img/1.jpg",
		LinkURL:          "https://shop.example.com/cream",
		HeadlineIndex:    1,
		DescriptionIndex: 2,
		ImageIndex:       3,
		CTAIndex:         1,
	}
}

func createTestAdSet(t *testing.T) *models.AdSet {
	t.Helper()
	set, err := variation.Generate(&models.Profile{
		ProductName:          "مكنسة روبوت",
		ProductDescription:   "مكنسة ذكية تنظف البيت لوحدها",
		Market:               models.MarketEgypt,
		PriceTier:            models.PriceTierPremium,
		AwarenessLevel:       models.AwarenessWarm,
		CompetitionLevel:     models.CompetitionHigh,
		MainBenefit:          "بيت نضيف من غير تعب",
		MainPain:             "التنضيف اليومي",
		UniqueDifferentiator: "خريطة ذكية للبيت",
	})
	require.NoError(t, err)
	return set
}

func readCSV(t *testing.T, content string) [][]string {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return rows
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Meta(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{Format: "meta", Ads: []export.Ad{createTestAd()}})
	require.NoError(t, err)

	assert.Equal(t, FormatMeta, output.Format)
	assert.Equal(t, "meta_ads_20260301_093000.csv", output.Filename)
	assert.Equal(t, 1, output.Rows)

	rows := readCSV(t, output.Content)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ad Name", "Platform", "Headline", "Primary Text", "Description", "Call To Action", "Image URL", "Link URL"}, rows[0])
	assert.Equal(t, "Ad_H1_D2_I3_C1_IF", rows[1][0])
	assert.Equal(t, "كريم طبيعي, بدون آثار جانبية", rows[1][3])
}

func TestHandler_Execute_Google(t *testing.T) {
	cfg := createTestConfig()
	cfg.FallbackCTA = "تسوق الآن"
	handler := NewHandler(cfg, logger.NewTestLogger(t))

	long := createTestAd()
	long.Headline = "كريم التفتيح الطبيعي الأول في مصر بدون أي آثار جانبية"

	output, err := handler.Execute(context.Background(), &Input{Format: "Google", Ads: []export.Ad{createTestAd(), long}})
	require.NoError(t, err)
	assert.Equal(t, "google_ads_20260301_093000.csv", output.Filename)

	rows := readCSV(t, output.Content)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Ad Name", "Headline 1", "Headline 2", "Description 1", "Description 2", "Call To Action", "Final URL"}, rows[0])

	assert.Equal(t, "وداعاً للهالات السوداء", rows[1][1])
	assert.Equal(t, "تسوق الآن", rows[1][2])
	assert.Equal(t, "", rows[1][4])

	assert.Equal(t, 30, len([]rune(rows[2][1])))
	assert.NotEqual(t, "تسوق الآن", rows[2][2])
	assert.Equal(t, "https://shop.example.com/cream", rows[2][6])
}

func TestHandler_Execute_FromAdSet(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewTestLogger(t))
	set := createTestAdSet(t)

	output, err := handler.Execute(context.Background(), &Input{
		AdSet:   set,
		LinkURL: "https://shop.example.com/robot",
	})
	require.NoError(t, err)
	assert.Equal(t, FormatMeta, output.Format)
	assert.Equal(t, 5, output.Rows)

	rows := readCSV(t, output.Content)
	require.Len(t, rows, 6)
	for i, v := range set.Variants {
		row := rows[i+1]
		assert.Equal(t, export.ProfessionalAdName(i+1, i+1, 1, 1, "facebook_feed"), row[0])
		assert.Equal(t, "facebook_feed", row[1])
		assert.Equal(t, v.PrimaryHook, row[2])
		assert.Equal(t, v.CTA.Primary, row[5])
		assert.Equal(t, "https://shop.example.com/robot", row[7])
	}
}

func TestAdsFromAdSet(t *testing.T) {
	ads := AdsFromAdSet(createTestAdSet(t), "tiktok", "https://x.example", "https://img.example/1.png")
	require.Len(t, ads, 5)
	assert.Equal(t, "Ad_H5_D5_I1_C1_T", ads[4].AdName())
	assert.Equal(t, "https://img.example/1.png", ads[0].ImageURL)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_InvalidInput(t *testing.T) {
	handler := NewHandler(createTestConfig(), logger.NewNoOpLogger())

	tests := []struct {
		name  string
		input *Input
	}{
		{"unknown format", &Input{Format: "tiktok", Ads: []export.Ad{createTestAd()}}},
		{"nothing to export", &Input{Format: "meta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), tt.input)
			assert.Nil(t, output)
			assert.Equal(t, apperrors.ErrCodeInvalidInput, apperrors.FromEngineError(err).Code)
		})
	}
}
