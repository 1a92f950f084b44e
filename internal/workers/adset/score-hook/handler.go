// internal/workers/adset/score-hook/handler.go
package scorehook

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
	"adsynth-workers/internal/engine/hookscore"
	"adsynth-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "score-hook"
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
	market, err := models.ParseMarket(input.Market)
	if err != nil {
		return nil, err
	}

	result, err := hookscore.Run(input.Hook, market)
	if err != nil {
		return nil, err
	}

	if result.Score.WasEnhanced {
		metrics.HooksEnhanced.WithLabelValues(string(market)).Inc()
	}

	h.logger.Info("hook scored", map[string]interface{}{
		"market":      market,
		"total":       result.Score.Total,
		"wasEnhanced": result.Score.WasEnhanced,
	})

	return &Output{
		OriginalHook: result.OriginalHook,
		FinalHook:    result.FinalHook,
		Score:        result.Score,
		WasEnhanced:  result.Score.WasEnhanced,
	}, nil
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
