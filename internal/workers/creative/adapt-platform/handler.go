// internal/workers/creative/adapt-platform/handler.go
package adaptplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"adsynth-workers/internal/common/camunda"
	apperrors "adsynth-workers/internal/common/errors"
	"adsynth-workers/internal/common/logger"
	"adsynth-workers/internal/common/metrics"
	"adsynth-workers/internal/common/observability"
	"adsynth-workers/internal/engine/audience"
	"adsynth-workers/internal/engine/platform"
	"adsynth-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "adapt-platform"
)

type Handler struct {
	config     *Config
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		logger:     log,
		errHandler: apperrors.NewErrorHandler(log),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	started := time.Now()
	defer metrics.TrackActive(TaskType)()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()
	ctx, endSpan := observability.Trace(ctx, TaskType, job.Key)

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		stdErr := apperrors.NewInvalidInputError(fmt.Sprintf("parse input: %v", err))
		endSpan(stdErr)
		h.failJob(ctx, client, job, started, stdErr)
		return
	}

	output, err := h.execute(ctx, &input)
	endSpan(err)
	if err != nil {
		h.failJob(ctx, client, job, started, err)
		return
	}

	h.completeJob(ctx, client, job, started, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Headline) == "" {
		return nil, &models.InputError{Field: "headline", Reason: "required"}
	}

	headline, description := input.Headline, input.Description
	output := &Output{}

	if input.Motivation != "" {
		motivation, err := models.ParseMotivation(input.Motivation)
		if err != nil {
			return nil, err
		}
		enriched, err := audience.Enrich(headline, description, motivation)
		if err != nil {
			return nil, err
		}
		headline, description = enriched.Headline, enriched.Description
		output.Segment = &enriched.Segment
	}

	names := targets(input)
	output.Adaptations = make([]Adaptation, 0, len(names))
	for _, name := range names {
		adapted, err := platform.Adapt(headline, description, name)
		if err != nil {
			return nil, err
		}
		output.Adaptations = append(output.Adaptations, Adaptation{
			Platform:    name,
			Headline:    adapted.Headline,
			Description: adapted.Description,
			Spec:        adapted.Spec,
			Layout:      adapted.Layout,
		})
	}

	h.logger.Info("copy adapted", map[string]interface{}{
		"platforms":  names,
		"motivation": input.Motivation,
	})
	return output, nil
}

// targets merges Platform and Platforms, dropping duplicates.
func targets(input *Input) []string {
	var names []string
	seen := make(map[string]bool)
	for _, n := range append([]string{input.Platform}, input.Platforms...) {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		names = append(names, n)
	}
	if len(names) == 0 {
		return platform.Names()
	}
	return names
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, started time.Time, output *Output) {
	if err := camunda.CompleteJob(ctx, client, job, output); err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		metrics.ObserveJob(TaskType, started, "COMPLETE_FAILED")
		return
	}
	metrics.ObserveJob(TaskType, started, "")
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, started time.Time, err error) {
	stdErr := apperrors.FromEngineError(err)
	metrics.ObserveJob(TaskType, started, string(stdErr.Code))
	h.errHandler.HandleJobError(ctx, client, job, stdErr)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
