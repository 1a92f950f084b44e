package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"adsynth-workers/internal/engine/brandkit"
	"adsynth-workers/internal/engine/platform"
	"adsynth-workers/internal/engine/variation"
	"adsynth-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// FromEngineError
// ==========================

func TestFromEngineError_Classification(t *testing.T) {
	_, platformErr := platform.Lookup("myspace")
	require.Error(t, platformErr)

	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "profile validation",
			err:      (&models.Profile{}).Validate(),
			expected: ErrCodeInvalidProfile,
		},
		{
			name:     "single input error",
			err:      &models.InputError{Field: "market", Reason: "unsupported market levant"},
			expected: ErrCodeInvalidInput,
		},
		{
			name:     "unknown platform",
			err:      platformErr,
			expected: ErrCodeUnknownPlatform,
		},
		{
			name:     "unknown segment",
			err:      &models.InputError{Field: "motivation", Reason: "unsupported buying motivation \"fun\""},
			expected: ErrCodeUnknownSegment,
		},
		{
			name:     "lookup gap",
			err:      &models.LookupError{Table: "cta_matrix", Key: "egypt/cold/luxury"},
			expected: ErrCodeLookupGap,
		},
		{
			name:     "wrapped lookup gap",
			err:      fmt.Errorf("cta matrix incomplete: %w", models.ErrLookupGap),
			expected: ErrCodeLookupGap,
		},
		{
			name:     "missing brand kit",
			err:      fmt.Errorf("%w: acme", brandkit.ErrKitNotFound),
			expected: ErrCodeBrandKitNotFound,
		},
		{
			name:     "anything else",
			err:      stderrors.New("boom"),
			expected: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdErr := FromEngineError(tt.err)
			require.NotNil(t, stdErr)
			assert.Equal(t, tt.expected, stdErr.Code)
			assert.False(t, stdErr.Retryable)
		})
	}
}

func TestFromEngineError_DeadlineIsRetryableTimeout(t *testing.T) {
	stdErr := FromEngineError(fmt.Errorf("select brand kit: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrCodeTimeout, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Equal(t, 2, ConvertToBPMNError(stdErr).Retries)
}

func TestFromEngineError_ProfileFieldsInMetadata(t *testing.T) {
	err := (&models.Profile{ProductName: "x"}).Validate()
	stdErr := FromEngineError(err)

	require.NotNil(t, stdErr)
	fields, ok := stdErr.Metadata["fields"].([]string)
	require.True(t, ok)
	assert.Contains(t, fields, "market")
	assert.NotContains(t, fields, "productName")
}

func TestFromEngineError_AdSetError(t *testing.T) {
	err := &variation.AdSetError{
		Angle: models.AngleUrgency,
		Err:   &models.LookupError{Table: "cta_matrix", Key: "mena/warm/mid"},
	}

	stdErr := FromEngineError(err)
	assert.Equal(t, ErrCodeAdSetGenerationFailed, stdErr.Code)
	assert.Equal(t, "urgency", stdErr.Metadata["failedAngle"])
	assert.Equal(t, string(ErrCodeLookupGap), stdErr.Metadata["causeCode"])
	assert.Contains(t, stdErr.Details, "mena/warm/mid")
}

func TestFromEngineError_PassesStandardErrorThrough(t *testing.T) {
	original := NewDatabaseInsertFailedError(stderrors.New("connection reset"))
	wrapped := fmt.Errorf("persist: %w", original)

	assert.Same(t, original, FromEngineError(wrapped))
	assert.Nil(t, FromEngineError(nil))
}

// ==========================
// BPMN conversion and retries
// ==========================

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewDatabaseQueryFailedError("select brand kit", stderrors.New("timeout")).
		WithMetadata("kitId", "acme")

	bpmnErr := ConvertToBPMNError(stdErr)

	assert.Equal(t, "DATABASE_ERROR", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "DATABASE_ERROR", vars["errorCode"])
	assert.Equal(t, "DATABASE_QUERY_FAILED", vars["originalErrorCode"])
	assert.Equal(t, "acme", vars["kitId"])
	assert.NotEmpty(t, vars["timestamp"])
}

func TestConvertToBPMNError_UnmappedCodeFallsBack(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewAuthenticationError("bad token"))
	assert.Equal(t, "AUTHENTICATION_ERROR", bpmnErr.Code)
	assert.Zero(t, bpmnErr.Retries)
}

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeInvalidProfile, 0},
		{ErrCodeInvalidInput, 0},
		{ErrCodeLookupGap, 0},
		{ErrCodeAdSetGenerationFailed, 0},
		{ErrCodeBrandKitNotFound, 0},
		{ErrCodeExportFailed, 0},
		{ErrCodeDatabaseQueryFailed, 3},
		{ErrCodeDatabaseInsertFailed, 3},
		{ErrCodeCacheUnavailable, 3},
		{ErrCodeTimeout, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.expected, GetRetryCount(tt.code))
			assert.Equal(t, tt.expected > 0, IsRetryableErrorCode(tt.code))
		})
	}
}

func TestRemainingRetries(t *testing.T) {
	assert.Equal(t, 2, RemainingRetries(3, 3))
	assert.Equal(t, 3, RemainingRetries(10, 3))
	assert.Equal(t, 0, RemainingRetries(1, 3))
	assert.Equal(t, 0, RemainingRetries(0, 3))
	assert.Equal(t, 0, RemainingRetries(5, 0))
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeInvalidProfile))
	assert.Equal(t, "ENGINE", GetErrorCategory(ErrCodeLookupGap))
	assert.Equal(t, "ENGINE", GetErrorCategory(ErrCodeAdSetGenerationFailed))
	assert.Equal(t, "CREATIVE", GetErrorCategory(ErrCodeUnknownPlatform))
	assert.Equal(t, "BRAND", GetErrorCategory(ErrCodeBrandKitInvalid))
	assert.Equal(t, "EXPORT", GetErrorCategory(ErrCodeExportFailed))
	assert.Equal(t, "DATABASE", GetErrorCategory(ErrCodeDatabaseInsertFailed))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}
