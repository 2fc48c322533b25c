// Package config holds runtime settings for the CLI and server, loaded via
// viper from a config file and DECKGEN_-prefixed environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/deckgen/deckgen/internal/publish"
	"github.com/deckgen/deckgen/internal/render"
	"github.com/deckgen/deckgen/internal/segment"
)

type Config struct {
	Port string

	// Slide service connection
	SlidesServiceURL string
	SlidesAPIKey     string

	// Auth for our own API
	APIKey string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Job state
	JobTTL time.Duration

	// Enhancement
	EnhanceConcurrency int

	// Segmentation limits
	MaxBullets   int
	MaxTitleLen  int
	MaxBulletLen int

	// Rendering
	DefaultTheme string
}

// NewViper returns a viper instance with defaults and env binding applied.
// Callers add config file lookup paths before reading.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DECKGEN")
	v.AutomaticEnv()

	v.SetDefault("port", "8090")
	v.SetDefault("slides_service_url", "http://localhost:8080")
	v.SetDefault("slides_api_key", "")
	v.SetDefault("api_key", "")
	v.SetDefault("worker_count", 4)
	v.SetDefault("max_queue_size", 100)
	v.SetDefault("job_ttl", time.Hour)
	v.SetDefault("enhance_concurrency", 4)
	v.SetDefault("max_bullets", segment.DefaultMaxBullets)
	v.SetDefault("max_title_len", segment.DefaultMaxTitleLen)
	v.SetDefault("max_bullet_len", segment.DefaultMaxBulletLen)
	v.SetDefault("default_theme", render.DefaultTheme)

	return v
}

// Load reads settings out of the viper instance and clamps nonsensical
// values back to defaults.
func Load(v *viper.Viper) Config {
	cfg := Config{
		Port: v.GetString("port"),

		SlidesServiceURL: v.GetString("slides_service_url"),
		SlidesAPIKey:     v.GetString("slides_api_key"),

		APIKey: v.GetString("api_key"),

		WorkerCount:  v.GetInt("worker_count"),
		MaxQueueSize: v.GetInt("max_queue_size"),

		JobTTL: v.GetDuration("job_ttl"),

		EnhanceConcurrency: v.GetInt("enhance_concurrency"),

		MaxBullets:   v.GetInt("max_bullets"),
		MaxTitleLen:  v.GetInt("max_title_len"),
		MaxBulletLen: v.GetInt("max_bullet_len"),

		DefaultTheme: v.GetString("default_theme"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = time.Hour
	}
	if cfg.EnhanceConcurrency <= 0 {
		cfg.EnhanceConcurrency = 4
	}
	if cfg.MaxBullets <= 0 {
		cfg.MaxBullets = segment.DefaultMaxBullets
	}
	if cfg.MaxTitleLen <= 0 {
		cfg.MaxTitleLen = segment.DefaultMaxTitleLen
	}
	if cfg.MaxBulletLen <= 0 {
		cfg.MaxBulletLen = segment.DefaultMaxBulletLen
	}
	if !render.ValidTheme(cfg.DefaultTheme) {
		cfg.DefaultTheme = render.DefaultTheme
	}

	return cfg
}

// Validate checks the settings the server cannot run without.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DECKGEN_API_KEY is required")
	}
	return nil
}

// ValidatePublish checks the settings needed to reach the slide service.
func (c Config) ValidatePublish() error {
	if c.SlidesServiceURL == "" {
		return fmt.Errorf("DECKGEN_SLIDES_SERVICE_URL is required")
	}
	if c.SlidesAPIKey == "" {
		return fmt.Errorf("DECKGEN_SLIDES_API_KEY is required")
	}
	return nil
}

// SegmentConfig maps the limits onto the segmenter's config.
func (c Config) SegmentConfig() segment.Config {
	return segment.Config{
		MaxBullets:   c.MaxBullets,
		MaxTitleLen:  c.MaxTitleLen,
		MaxBulletLen: c.MaxBulletLen,
	}
}

// PublishConfig maps the worker settings onto the publish pipeline's config.
func (c Config) PublishConfig() publish.Config {
	return publish.Config{
		WorkerCount:  c.WorkerCount,
		MaxQueueSize: c.MaxQueueSize,
		JobTTL:       c.JobTTL,
	}
}
