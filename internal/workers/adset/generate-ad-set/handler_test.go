// internal/workers/adset/generate-ad-set/handler_test.go
package generateadset

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"adsynth-workers/internal/common/database"
	apperrors "adsynth-workers/internal/common/errors"
	"adsynth-workers/internal/common/logger"
	"adsynth-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func createTestConfig() *Config {
	cfg := LoadConfig()
	cfg.Clock = fixedClock
	return cfg
}

func createTestInput() *Input {
	return &Input{
		Profile: map[string]interface{}{
			"productName":          "عطر عود ملكي",
			"productDescription":   "عطر عود فاخر بثبات طويل",
			"market":               "gulf",
			"priceTier":            "premium",
			"awarenessLevel":       "warm",
			"competitionLevel":     "high",
			"mainBenefit":          "حضور لا ينسى",
			"mainPain":             "العطور اللي ما تثبت",
			"uniqueDifferentiator": "عود كمبودي أصلي",
		},
	}
}

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (tl *testLogger) With(fields map[string]interface{}) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, newTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.False(t, output.Cached)
	assert.Empty(t, output.AdSetID)
	assert.Len(t, output.ProfileHash, 64)
	assert.Empty(t, output.Layouts)

	set := output.AdSet
	assert.Equal(t, fixedClock(), set.GeneratedAt)
	assert.Equal(t, models.MarketGulf, set.Profile.Market)
	for i, v := range set.Variants {
		assert.Equal(t, models.AngleOrder[i], v.Angle.Type)
		assert.NotEmpty(t, v.PrimaryHook)
		assert.Equal(t, v.HookScore.Sum(), v.HookScore.Total)
	}
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	first, err := NewHandler(createTestConfig(), nil, nil, newTestLogger(t)).
		Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	second, err := NewHandler(createTestConfig(), nil, nil, newTestLogger(t)).
		Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestHandler_Execute_Layouts(t *testing.T) {
	tests := []struct {
		name          string
		configLayouts bool
		inputLayouts  bool
		expected      int
	}{
		{"disabled", false, false, 0},
		{"requested by the job", false, true, 5},
		{"enabled in config", true, false, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			cfg.IncludeLayouts = tt.configLayouts
			input := createTestInput()
			input.IncludeLayouts = tt.inputLayouts

			output, err := NewHandler(cfg, nil, nil, newTestLogger(t)).Execute(context.Background(), input)
			require.NoError(t, err)
			require.Len(t, output.Layouts, tt.expected)
			for i, l := range output.Layouts {
				assert.Equal(t, output.AdSet.Variants[i].Angle.SuggestedLayout, l.LayoutType)
			}
		})
	}
}

// ==========================
// Cache and Persistence Tests
// ==========================

func TestHandler_Execute_CachesAdSets(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := database.NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.Close()

	cfg := createTestConfig()
	cfg.CacheTTL = time.Hour
	handler := NewHandler(cfg, cache, nil, newTestLogger(t))

	first, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.True(t, mr.Exists("adsynth:adset:"+first.ProfileHash))
	assert.Equal(t, time.Hour, mr.TTL("adsynth:adset:"+first.ProfileHash))

	second, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.ProfileHash, second.ProfileHash)
	assert.Equal(t, first.AdSet.Variants, second.AdSet.Variants)
}

func TestHandler_Execute_CacheFailureFallsBackToEngine(t *testing.T) {
	client, mock := redismock.NewClientMock()
	handler := NewHandler(createTestConfig(), database.NewRedisFromClient(client), nil, newTestLogger(t))

	mock.ExpectGet("adsynth:adset:" + hashOf(t, createTestInput())).
		SetErr(stderrors.New("i/o timeout"))

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.False(t, output.Cached)
	assert.NotNil(t, output.AdSet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PersistsAdSets(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ad_sets")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "gulf", "عطر عود ملكي", sqlmock.AnyArg(), fixedClock()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("0d7f1a52-0000-4000-8000-00000000abcd"))

	cfg := createTestConfig()
	cfg.PersistAdSets = true
	handler := NewHandler(cfg, nil, database.NewPostgresFromDB(db), newTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.Equal(t, "0d7f1a52-0000-4000-8000-00000000abcd", output.AdSetID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PersistenceFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ad_sets")).
		WillReturnError(stderrors.New("connection refused"))

	cfg := createTestConfig()
	cfg.PersistAdSets = true
	handler := NewHandler(cfg, nil, database.NewPostgresFromDB(db), newTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput())
	assert.Nil(t, output)

	stdErr := apperrors.FromEngineError(err)
	require.NotNil(t, stdErr)
	assert.Equal(t, apperrors.ErrCodeDatabaseInsertFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_InvalidProfile(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, newTestLogger(t))

	tests := []struct {
		name     string
		mutate   func(p map[string]interface{})
		expected []string
	}{
		{
			name:     "missing pain",
			mutate:   func(p map[string]interface{}) { delete(p, "mainPain") },
			expected: []string{"mainPain"},
		},
		{
			name: "unsupported market and blank name",
			mutate: func(p map[string]interface{}) {
				p["market"] = "levant"
				p["productName"] = "   "
			},
			expected: []string{"market", "productName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := createTestInput()
			tt.mutate(input.Profile)

			output, err := handler.Execute(context.Background(), input)
			assert.Nil(t, output)

			stdErr := apperrors.FromEngineError(err)
			require.NotNil(t, stdErr)
			assert.Equal(t, apperrors.ErrCodeInvalidProfile, stdErr.Code)
			assert.Equal(t, tt.expected, stdErr.Metadata["fields"])
		})
	}
}

func TestHandler_Execute_MissingProfile(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, nil, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{})
	assert.Nil(t, output)
	assert.Equal(t, apperrors.ErrCodeInvalidProfile, apperrors.FromEngineError(err).Code)
}

func hashOf(t *testing.T, input *Input) string {
	t.Helper()
	p, err := decodeProfile(input.Profile)
	require.NoError(t, err)
	return database.ProfileHash(*p)
}
