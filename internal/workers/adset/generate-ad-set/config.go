// internal/workers/adset/generate-ad-set/config.go
package generateadset

import (
	"time"

	"adsynth-workers/internal/common/config"
)

type Config struct {
	Timeout        time.Duration
	CacheTTL       time.Duration
	PersistAdSets  bool
	IncludeLayouts bool
	// Clock stamps GeneratedAt; nil means wall-clock UTC.
	Clock func() time.Time
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  10 * time.Second,
		CacheTTL: 24 * time.Hour,
	}
}

// FromEngineConfig applies the engine section of the service configuration.
func FromEngineConfig(engine config.EngineConfig) *Config {
	cfg := LoadConfig()
	if engine.AdSetCacheTTL > 0 {
		cfg.CacheTTL = engine.AdSetCacheTTL
	}
	cfg.PersistAdSets = engine.PersistAdSets
	cfg.IncludeLayouts = engine.IncludeLayouts
	return cfg
}
