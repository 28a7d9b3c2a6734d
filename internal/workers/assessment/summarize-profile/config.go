// internal/workers/assessment/summarize-profile/config.go
package summarizeprofile

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
