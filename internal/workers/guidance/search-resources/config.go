// internal/workers/guidance/search-resources/config.go
package searchresources

import "time"

type Config struct {
	Index   string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Index:   "career-resources",
		Timeout: 30 * time.Second,
	}
}
