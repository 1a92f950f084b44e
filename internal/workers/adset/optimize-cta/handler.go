// internal/workers/adset/optimize-cta/handler.go
package optimizecta

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adsynth-workers/internal/common/camunda"
	apperrors "adsynth-workers/internal/common/errors"
	"adsynth-workers/internal/common/logger"
	"adsynth-workers/internal/common/metrics"
	"adsynth-workers/internal/common/observability"
	"adsynth-workers/internal/engine/angle"
	"adsynth-workers/internal/engine/cta"
	testingsuggest "adsynth-workers/internal/engine/testing"
	"adsynth-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "optimize-cta"
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
	h.inheritFromProfile(input)

	market, err := models.ParseMarket(input.Market)
	if err != nil {
		return nil, err
	}
	awareness, err := models.ParseAwareness(input.AwarenessLevel)
	if err != nil {
		return nil, err
	}
	tier, err := models.ParsePriceTier(input.PriceTier)
	if err != nil {
		return nil, err
	}
	angleType, err := models.ParseAngleType(input.AngleType)
	if err != nil {
		return nil, err
	}

	result, err := cta.Run(market, awareness, tier, angleType)
	if err != nil {
		return nil, err
	}
	output := &Output{CTA: result}

	if input.Profile != nil {
		suggestion, err := suggestionFor(input.Profile, angleType)
		if err != nil {
			return nil, err
		}
		output.TestingSuggestion = &suggestion
	}

	h.logger.Info("cta selected", map[string]interface{}{
		"market":       market,
		"awareness":    awareness,
		"priceTier":    tier,
		"angleType":    angleType,
		"urgencyLevel": result.UrgencyLevel,
	})
	return output, nil
}

func (h *Handler) inheritFromProfile(input *Input) {
	p := input.Profile
	if p == nil {
		return
	}
	if input.Market == "" {
		input.Market = string(p.Market)
	}
	if input.AwarenessLevel == "" {
		input.AwarenessLevel = string(p.AwarenessLevel)
	}
	if input.PriceTier == "" {
		input.PriceTier = string(p.PriceTier)
	}
}

func suggestionFor(p *models.Profile, angleType models.AngleType) (models.TestingSuggestion, error) {
	angles, err := angle.Run(p)
	if err != nil {
		return models.TestingSuggestion{}, err
	}
	for _, a := range angles {
		if a.Type == angleType {
			return testingsuggest.Build(a, p), nil
		}
	}
	return models.TestingSuggestion{}, &models.LookupError{Table: "angles", Key: string(angleType)}
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
