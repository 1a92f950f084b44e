// internal/workers/export/export-ads-csv/config.go
package exportadscsv

import (
	"time"

	"adsynth-workers/internal/common/config"
	"adsynth-workers/internal/engine/export"
)

type Config struct {
	Timeout     time.Duration
	FallbackCTA string
	// Clock names the export file; nil means wall-clock time.
	Clock func() time.Time
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     5 * time.Second,
		FallbackCTA: export.DefaultFallbackCTA,
	}
}

func FromEngineConfig(engine config.EngineConfig) *Config {
	cfg := LoadConfig()
	if engine.ExportFallbackCTA != "" {
		cfg.FallbackCTA = engine.ExportFallbackCTA
	}
	return cfg
}
