// cmd/worker-manager/workers.go
package main

import (
	"adsynth-workers/internal/common/camunda"
	"adsynth-workers/internal/common/config"
	"adsynth-workers/internal/common/database"
	"adsynth-workers/internal/common/logger"
	"adsynth-workers/internal/engine/brandkit"
	generateadset "adsynth-workers/internal/workers/adset/generate-ad-set"
	optimizecta "adsynth-workers/internal/workers/adset/optimize-cta"
	scorehook "adsynth-workers/internal/workers/adset/score-hook"
	validatebrandsafety "adsynth-workers/internal/workers/brand/validate-brand-safety"
	adaptplatform "adsynth-workers/internal/workers/creative/adapt-platform"
	curatecombinations "adsynth-workers/internal/workers/creative/curate-combinations"
	enrichsegment "adsynth-workers/internal/workers/creative/enrich-segment"
	generatelayout "adsynth-workers/internal/workers/creative/generate-layout"
	exportadscsv "adsynth-workers/internal/workers/export/export-ads-csv"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// workerDeps carries the optional backing services. postgres and redis stay
// nil when disabled in config.
type workerDeps struct {
	registry *brandkit.Registry
	postgres *database.PostgresClient
	redis    *database.RedisClient
}

// The accessors below hand out untyped nils so handlers can test against nil.

func (d workerDeps) adSetCache() generateadset.AdSetCache {
	if d.redis == nil {
		return nil
	}
	return d.redis
}

func (d workerDeps) adSetStore() generateadset.AdSetStore {
	if d.postgres == nil {
		return nil
	}
	return d.postgres
}

func (d workerDeps) kitCache() validatebrandsafety.KitCache {
	if d.redis == nil {
		return nil
	}
	return d.redis
}

func (d workerDeps) kitStore() validatebrandsafety.KitStore {
	if d.postgres == nil {
		return nil
	}
	return d.postgres
}

// registerWorkers opens one job worker per enabled task type.
func registerWorkers(client zbc.Client, cfg *config.Config, deps workerDeps, log logger.Logger) []worker.JobWorker {
	handlers := []struct {
		taskType string
		handler  camunda.JobHandler
	}{
		{generateadset.TaskType, generateadset.NewHandler(generateadset.FromEngineConfig(cfg.Engine), deps.adSetCache(), deps.adSetStore(), log)},
		{scorehook.TaskType, scorehook.NewHandler(scorehook.LoadConfig(), log)},
		{optimizecta.TaskType, optimizecta.NewHandler(optimizecta.LoadConfig(), log)},
		{generatelayout.TaskType, generatelayout.NewHandler(generatelayout.LoadConfig(), log)},
		{adaptplatform.TaskType, adaptplatform.NewHandler(adaptplatform.LoadConfig(), log)},
		{enrichsegment.TaskType, enrichsegment.NewHandler(enrichsegment.LoadConfig(), log)},
		{curatecombinations.TaskType, curatecombinations.NewHandler(curatecombinations.LoadConfig(), log)},
		{validatebrandsafety.TaskType, validatebrandsafety.NewHandler(validatebrandsafety.FromEngineConfig(cfg.Engine), deps.registry, deps.kitCache(), deps.kitStore(), log)},
		{exportadscsv.TaskType, exportadscsv.NewHandler(exportadscsv.FromEngineConfig(cfg.Engine), log)},
	}

	workers := make([]worker.JobWorker, 0, len(handlers))
	for _, h := range handlers {
		w := camunda.Register(client, h.taskType, config.GetWorkerConfig(cfg, h.taskType), h.handler, log)
		if w != nil {
			workers = append(workers, w)
		}
	}
	return workers
}
