// internal/workers/brand/validate-brand-safety/handler.go
package validatebrandsafety

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
	"adsynth-workers/internal/engine/brandkit"
	"adsynth-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-brand-safety"

	SourceInline   = "inline"
	SourceRegistry = "registry"
	SourceCache    = "cache"
	SourceDatabase = "database"
)

// KitCache is satisfied by *database.RedisClient.
type KitCache interface {
	GetBrandKitDefinition(ctx context.Context, id string) ([]byte, error)
	SetBrandKitDefinition(ctx context.Context, id string, definition []byte, ttl time.Duration) error
}

// KitStore is satisfied by *database.PostgresClient.
type KitStore interface {
	GetBrandKitDefinition(ctx context.Context, id string) ([]byte, error)
}

type Handler struct {
	config     *Config
	registry   *brandkit.Registry
	cache      KitCache
	store      KitStore
	logger     logger.Logger
	errHandler *apperrors.ErrorHandler
}

// NewHandler resolves kits from the registry first, then the cache, then the
// store. A nil registry holds only the default kit; cache and store may be nil.
func NewHandler(config *Config, registry *brandkit.Registry, cache KitCache, store KitStore, log logger.Logger) *Handler {
	if registry == nil {
		registry = brandkit.NewRegistry()
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		registry:   registry,
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
	if strings.TrimSpace(input.Text) == "" {
		return nil, &models.InputError{Field: "text", Reason: "required"}
	}

	kit, source, err := h.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	safety := brandkit.ValidateBrandSafety(input.Text, kit)
	output := &Output{
		KitID:              kit.ID,
		KitSource:          source,
		Safe:               safety.Safe,
		Violations:         safety.Violations,
		ComplianceWarnings: brandkit.CheckCompliance(input.Text, kit),
		Typography:         brandkit.GetTypography(kit),
	}

	if input.GradientType != "" {
		gradient, err := brandkit.GetBrandGradient(kit, input.GradientType)
		if err != nil {
			return nil, err
		}
		output.Gradient = gradient
	}

	if n := len(safety.Violations); n > 0 {
		metrics.BrandSafetyViolations.WithLabelValues(kit.ID).Add(float64(n))
	}

	h.logger.Info("brand safety checked", map[string]interface{}{
		"kitId":      kit.ID,
		"kitSource":  source,
		"safe":       safety.Safe,
		"violations": len(safety.Violations),
		"warnings":   len(output.ComplianceWarnings),
	})
	return output, nil
}

func (h *Handler) resolve(ctx context.Context, input *Input) (brandkit.BrandKit, string, error) {
	if input.Kit != nil {
		if err := brandkit.Validate(*input.Kit); err != nil {
			return brandkit.BrandKit{}, "", invalidKit(err)
		}
		return *input.Kit, SourceInline, nil
	}

	id := strings.TrimSpace(input.KitID)
	if id == "" {
		id = brandkit.DefaultID
	}

	if kit, err := h.registry.Get(id); err == nil {
		return kit, SourceRegistry, nil
	}

	if kit, ok := h.fromCache(ctx, id); ok {
		return kit, SourceCache, nil
	}

	if h.store == nil {
		return brandkit.BrandKit{}, "", apperrors.NewBrandKitNotFoundError(id)
	}
	definition, err := h.store.GetBrandKitDefinition(ctx, id)
	if stderrors.Is(err, database.ErrNotFound) {
		return brandkit.BrandKit{}, "", apperrors.NewBrandKitNotFoundError(id)
	}
	if err != nil {
		return brandkit.BrandKit{}, "", apperrors.NewDatabaseQueryFailedError("select brand kit", err)
	}

	kit, err := decodeKit(definition, id)
	if err != nil {
		return brandkit.BrandKit{}, "", err
	}

	if h.cache != nil {
		if err := h.cache.SetBrandKitDefinition(ctx, id, definition, h.config.CacheTTL); err != nil {
			h.logger.Warn("brand kit cache write failed", map[string]interface{}{
				"kitId": id,
				"error": err.Error(),
			})
		}
	}
	return kit, SourceDatabase, nil
}

// fromCache treats unreadable or stale entries as a miss.
func (h *Handler) fromCache(ctx context.Context, id string) (brandkit.BrandKit, bool) {
	if h.cache == nil {
		return brandkit.BrandKit{}, false
	}
	definition, err := h.cache.GetBrandKitDefinition(ctx, id)
	if err != nil {
		if !stderrors.Is(err, database.ErrNotFound) {
			h.logger.Warn("brand kit cache read failed", map[string]interface{}{
				"kitId": id,
				"error": err.Error(),
			})
		}
		return brandkit.BrandKit{}, false
	}
	kit, err := decodeKit(definition, id)
	if err != nil {
		h.logger.Warn("cached brand kit is unusable", map[string]interface{}{
			"kitId": id,
			"error": err.Error(),
		})
		return brandkit.BrandKit{}, false
	}
	return kit, true
}

func decodeKit(definition []byte, id string) (brandkit.BrandKit, error) {
	kits, err := brandkit.Decode(definition)
	if err != nil {
		return brandkit.BrandKit{}, apperrors.NewBrandKitInvalidError(err.Error())
	}
	for _, k := range kits {
		if k.ID != id {
			continue
		}
		if err := brandkit.Validate(k); err != nil {
			return brandkit.BrandKit{}, invalidKit(err)
		}
		return k, nil
	}
	return brandkit.BrandKit{}, apperrors.NewBrandKitInvalidError(fmt.Sprintf("definition does not contain kit %s", id))
}

func invalidKit(err error) *apperrors.StandardError {
	stdErr := apperrors.NewBrandKitInvalidError(err.Error())
	var fields models.InputErrors
	if stderrors.As(err, &fields) {
		stdErr.WithMetadata("fields", fields.Fields())
	}
	return stdErr
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
