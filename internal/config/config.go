package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Worker pool
	WorkerCount          int
	MaxQueueSize         int
	MaxConcurrentExtract int

	// Upload limits
	MaxUploadBytes int64

	// Segmentation heuristics
	SegmentMinPriorLines   int
	SegmentLabelLookahead  int
	SegmentMinSectionWords int

	// Job state
	JobTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("CANDEX_API_KEY"),

		WorkerCount:          envInt("WORKER_COUNT", 4),
		MaxQueueSize:         envInt("MAX_QUEUE_SIZE", 100),
		MaxConcurrentExtract: envInt("MAX_CONCURRENT_EXTRACT", 8),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		SegmentMinPriorLines:   envInt("SEGMENT_MIN_PRIOR_LINES", 5),
		SegmentLabelLookahead:  envInt("SEGMENT_LABEL_LOOKAHEAD", 4),
		SegmentMinSectionWords: envInt("SEGMENT_MIN_SECTION_WORDS", 10),

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxConcurrentExtract <= 0 {
		cfg.MaxConcurrentExtract = 8
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.SegmentMinPriorLines <= 0 {
		cfg.SegmentMinPriorLines = 5
	}
	if cfg.SegmentLabelLookahead <= 0 {
		cfg.SegmentLabelLookahead = 4
	}
	if cfg.SegmentMinSectionWords <= 0 {
		cfg.SegmentMinSectionWords = 10
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("CANDEX_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
