// internal/workers/brand/validate-brand-safety/config.go
package validatebrandsafety

import (
	"time"

	"adsynth-workers/internal/common/config"
)

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  5 * time.Second,
		CacheTTL: time.Hour,
	}
}

func FromEngineConfig(engine config.EngineConfig) *Config {
	cfg := LoadConfig()
	if engine.BrandKitCacheTTL > 0 {
		cfg.CacheTTL = engine.BrandKitCacheTTL
	}
	return cfg
}
