// internal/workers/export/export-ads-csv/handler.go
package exportadscsv

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
	"adsynth-workers/internal/engine/export"
	"adsynth-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "export-ads-csv"
)

// defaultPlatforms label ads built from an ad set when the job names no platform.
var defaultPlatforms = map[string]string{
	FormatMeta:   "facebook_feed",
	FormatGoogle: "google_search",
}

type Handler struct {
	config     *Config
	now        func() time.Time
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	now := config.Clock
	if now == nil {
		now = time.Now
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		now:        now,
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
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = FormatMeta
	}
	if _, ok := defaultPlatforms[format]; !ok {
		return nil, &models.InputError{Field: "format", Reason: "must be one of meta, google; got \"" + input.Format + "\""}
	}

	ads := input.Ads
	if len(ads) == 0 {
		if input.AdSet == nil {
			return nil, &models.InputError{Field: "ads", Reason: "ads or adSet is required"}
		}
		ads = AdsFromAdSet(input.AdSet, h.platformFor(format, input.Platform), input.LinkURL, input.ImageURL)
	}

	var (
		content string
		err     error
	)
	switch format {
	case FormatGoogle:
		content, err = export.GoogleAdsCSV(ads, export.WithFallbackCTA(h.config.FallbackCTA))
	default:
		content, err = export.MetaCSV(ads)
	}
	if err != nil {
		return nil, apperrors.NewExportFailedError(format, err)
	}

	output := &Output{
		Format:   format,
		Filename: export.Filename(format, h.now()),
		Content:  content,
		Rows:     len(ads),
	}
	h.logger.Info("ads exported", map[string]interface{}{
		"format":   format,
		"rows":     output.Rows,
		"filename": output.Filename,
	})
	return output, nil
}

func (h *Handler) platformFor(format, requested string) string {
	if p := strings.TrimSpace(requested); p != "" {
		return p
	}
	return defaultPlatforms[format]
}

// AdsFromAdSet turns each variant into one ad. Variant i becomes headline and
// description i+1; every ad shares image 1 and CTA 1.
func AdsFromAdSet(set *models.AdSet, platform, linkURL, imageURL string) []export.Ad {
	ads := make([]export.Ad, 0, len(set.Variants))
	for i, v := range set.Variants {
		ads = append(ads, export.Ad{
			Platform:         platform,
			Headline:         v.PrimaryHook,
			PrimaryText:      v.BodyExpanded,
			Description:      v.BodyShort,
			CTA:              v.CTA.Primary,
			ImageURL:         imageURL,
			LinkURL:          linkURL,
			HeadlineIndex:    i + 1,
			DescriptionIndex: i + 1,
			ImageIndex:       1,
			CTAIndex:         1,
		})
	}
	return ads
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
