// internal/workers/creative/curate-combinations/config.go
package curatecombinations

import "time"

type Config struct {
	Timeout time.Duration
	// DefaultLimit applies when a job sends no limit. Negative limits return every pair.
	DefaultLimit int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      5 * time.Second,
		DefaultLimit: 10,
	}
}
