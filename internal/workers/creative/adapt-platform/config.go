// internal/workers/creative/adapt-platform/config.go
package adaptplatform

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
}
