// internal/workers/guidance/recommend-careers/config.go
package recommendcareers

import "time"

type Config struct {
	CacheTTL time.Duration
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 1 * time.Hour,
		Timeout:  30 * time.Second,
	}
}
