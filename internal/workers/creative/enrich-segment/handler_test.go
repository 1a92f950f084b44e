// internal/workers/creative/enrich-segment/handler_test.go
package enrichsegment

import (
	"context"
	"testing"

	apperrors "adsynth-workers/internal/common/errors"
	"adsynth-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Execute(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	tests := []struct {
		name                string
		input               *Input
		expectedHeadline    string
		expectedDescription string
	}{
		{
			name:                "price adds prefix and a call to act now",
			input:               &Input{Headline: "سماعة بلوتوث", Description: "صوت نقي", Motivation: "price"},
			expectedHeadline:    "💰 وفّر أكثر: سماعة بلوتوث",
			expectedDescription: "صوت نقي اطلب الآن!",
		},
		{
			name:                "convenience keeps an existing now call",
			input:               &Input{Headline: "سماعة بلوتوث", Description: "اطلبها الآن", Motivation: "convenience"},
			expectedHeadline:    "⚡ بكل سهولة: سماعة بلوتوث",
			expectedDescription: "اطلبها الآن",
		},
		{
			name:                "status is calm",
			input:               &Input{Headline: "ساعة فاخرة", Description: "إصدار محدود", Motivation: "status"},
			expectedHeadline:    "👑 حصرياً: ساعة فاخرة",
			expectedDescription: "إصدار محدود",
		},
		{
			name:                "prefix is not doubled",
			input:               &Input{Headline: "✨ جودة مضمونة: قهوة مختصة", Description: "محمصة طازجة", Motivation: "quality"},
			expectedHeadline:    "✨ جودة مضمونة: قهوة مختصة",
			expectedDescription: "محمصة طازجة",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHeadline, output.Headline)
			assert.Equal(t, tt.expectedDescription, output.Description)
			assert.Equal(t, tt.input.Motivation, string(output.Segment.BuyingMotivation))
		})
	}
}

func TestHandler_Execute_UnknownMotivation(t *testing.T) {
	handler := NewHandler(LoadConfig(), logger.NewNoOpLogger())

	for _, motivation := range []string{"", "fear"} {
		output, err := handler.Execute(context.Background(), &Input{Headline: "عرض", Motivation: motivation})
		assert.Nil(t, output)
		assert.Equal(t, apperrors.ErrCodeUnknownSegment, apperrors.FromEngineError(err).Code)
	}
}
