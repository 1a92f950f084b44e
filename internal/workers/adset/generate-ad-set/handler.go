// internal/workers/adset/generate-ad-set/handler.go
package generateadset

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"adsynth-workers/internal/common/camunda"
	"adsynth-workers/internal/common/database"
	apperrors "adsynth-workers/internal/common/errors"
	"adsynth-workers/internal/common/logger"
	"adsynth-workers/internal/common/metrics"
	"adsynth-workers/internal/common/observability"
	"adsynth-workers/internal/common/validation"
	"adsynth-workers/internal/engine/angle"
	"adsynth-workers/internal/engine/layout"
	"adsynth-workers/internal/engine/variation"
	"adsynth-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "generate-ad-set"

	sourceCache  = "cache"
	sourceEngine = "engine"
)

// AdSetCache is satisfied by *database.RedisClient.
type AdSetCache interface {
	GetAdSet(ctx context.Context, profileHash string) (*models.AdSet, error)
	SetAdSet(ctx context.Context, profileHash string, set *models.AdSet, ttl time.Duration) error
}

// AdSetStore is satisfied by *database.PostgresClient.
type AdSetStore interface {
	SaveAdSet(ctx context.Context, profileHash string, set *models.AdSet) (string, error)
}

type Handler struct {
	config     *Config
	engine     *variation.Engine
	cache      AdSetCache
	store      AdSetStore
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

// NewHandler wires the optional cache and store. Either may be nil.
func NewHandler(config *Config, cache AdSetCache, store AdSetStore, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		engine:     variation.New(variation.WithClock(config.Clock)),
		cache:      cache,
		store:      store,
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

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	profile, err := decodeProfile(input.Profile)
	if err != nil {
		return nil, err
	}
	hash := database.ProfileHash(*profile)

	set, source := h.cached(ctx, hash), sourceCache
	if set == nil {
		source = sourceEngine
		if set, err = h.generate(profile); err != nil {
			return nil, err
		}
		h.remember(ctx, hash, set)
	}

	output := &Output{
		ProfileHash: hash,
		AdSet:       set,
		Cached:      source == sourceCache,
	}

	if h.config.PersistAdSets && h.store != nil {
		id, err := h.store.SaveAdSet(ctx, hash, set)
		if err != nil {
			return nil, apperrors.NewDatabaseInsertFailedError(err)
		}
		output.AdSetID = id
	}

	if input.IncludeLayouts || h.config.IncludeLayouts {
		output.Layouts = layout.GenerateAll(set.Variants[:])
	}

	metrics.AdSetsGenerated.WithLabelValues(string(profile.Market), source).Inc()

	h.logger.Info("ad set ready", map[string]interface{}{
		"profileHash": hash,
		"market":      profile.Market,
		"source":      source,
		"adSetId":     output.AdSetID,
		"layouts":     len(output.Layouts),
	})
	return output, nil
}

// decodeProfile checks the raw payload against the profile schema before
// decoding, so every offending field is reported in one failure.
func decodeProfile(raw map[string]interface{}) (*models.Profile, error) {
	if raw == nil {
		return nil, apperrors.NewInvalidProfileError("profile is required").
			WithMetadata("fields", []string{"profile"})
	}

	result, err := validation.ProfileSchema.Validate(raw)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("validate profile: %v", err))
	}
	if !result.Valid {
		fields := result.Fields()
		return nil, apperrors.NewInvalidProfileError("invalid fields: " + strings.Join(fields, ", ")).
			WithMetadata("fields", fields)
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("encode profile: %v", err))
	}
	var profile models.Profile
	if err := json.Unmarshal(encoded, &profile); err != nil {
		return nil, apperrors.NewInvalidInputError(fmt.Sprintf("decode profile: %v", err))
	}
	return &profile, nil
}

func (h *Handler) generate(profile *models.Profile) (*models.AdSet, error) {
	angles, err := angle.Run(profile)
	if err != nil {
		return nil, err
	}
	set, err := h.engine.Run(profile, angles)
	if err != nil {
		return nil, err
	}

	for _, v := range set.Variants {
		if v.HookScore.WasEnhanced {
			metrics.HooksEnhanced.WithLabelValues(string(profile.Market)).Inc()
		}
	}
	return set, nil
}

// cached returns nil on a miss. Cache failures degrade to a miss.
func (h *Handler) cached(ctx context.Context, hash string) *models.AdSet {
	if h.cache == nil {
		return nil
	}
	set, err := h.cache.GetAdSet(ctx, hash)
	if err != nil {
		if !stderrors.Is(err, database.ErrNotFound) {
			h.logger.Warn("ad set cache read failed", map[string]interface{}{
				"profileHash": hash,
				"error":       err.Error(),
			})
		}
		return nil
	}
	return set
}

func (h *Handler) remember(ctx context.Context, hash string, set *models.AdSet) {
	if h.cache == nil {
		return
	}
	if err := h.cache.SetAdSet(ctx, hash, set, h.config.CacheTTL); err != nil {
		h.logger.Warn("ad set cache write failed", map[string]interface{}{
			"profileHash": hash,
			"error":       err.Error(),
		})
	}
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
