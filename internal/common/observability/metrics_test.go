package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"adsynth-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_SpansAndMetrics(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	o := New("adsynth-workers-test", logger.NewNoOpLogger(), recorder)
	defer o.Shutdown()

	ctx, end := o.StartSpan(context.Background(), "score-hook", 42)
	assert.NotNil(t, ctx)
	end(nil)

	_, end = o.StartSpan(context.Background(), "optimize-cta", 43)
	end(errors.New("lookup gap"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "score-hook", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "optimize-cta", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	o.RecordJobProcessed(context.Background(), "score-hook", "completed")
	o.RecordJobDuration(context.Background(), "score-hook", 3*time.Millisecond, "completed")

	_, end = Trace(context.Background(), "generate-ad-set", 44)
	end(nil)
	require.Len(t, recorder.Ended(), 3)
	assert.Equal(t, "generate-ad-set", recorder.Ended()[2].Name())
}

func TestObservability_ZeroValueIsSafe(t *testing.T) {
	var o Observability

	_, end := o.StartSpan(context.Background(), "score-hook", 1)
	end(nil)
	o.RecordJobProcessed(context.Background(), "score-hook", "completed")
	o.Shutdown()
}
