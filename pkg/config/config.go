package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Prefix is prepended to every environment variable, e.g. PATHTRACER_WIDTH
const Prefix = "PATHTRACER"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the render settings. Zero Width, SamplesPerPixel, MaxDepth and
// AspectRatio defer to the selected scene.
type Config struct {
	Scene            string        `envconfig:"SCENE" default:"default"`
	Width            int           `envconfig:"WIDTH" default:"0"`
	AspectRatio      float64       `envconfig:"ASPECT_RATIO" default:"0"`
	SamplesPerPixel  int           `envconfig:"SPP" default:"0"`
	MaxDepth         int           `envconfig:"DEPTH" default:"0"`
	Threads          int           `envconfig:"THREADS" default:"0"`
	Seed             int64         `envconfig:"SEED" default:"1"`
	AOSamples        int           `envconfig:"AO_SAMPLES" default:"0"`
	AODistance       float64       `envconfig:"AO_DISTANCE" default:"0.5"`
	BVHPolicy        string        `envconfig:"BVH" default:"random"`
	OutputDir        string        `envconfig:"OUT" default:"output"`
	PreviewWidth     int           `envconfig:"PREVIEW_WIDTH" default:"320"`
	ProgressInterval time.Duration `envconfig:"PROGRESS_INTERVAL" default:"2s"`

	Upload      bool   `envconfig:"UPLOAD" default:"false"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`
	S3Endpoint  string `envconfig:"S3_ENDPOINT"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3Prefix    string `envconfig:"S3_PREFIX" default:"renders"`
}

// Load reads envFile into the environment if it exists, then fills a Config
// from PATHTRACER_* variables. Variables already set take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplySceneDefaults fills unset render settings from a scene's preferences
func (c *Config) ApplySceneDefaults(width, samplesPerPixel, maxDepth int, aspectRatio float64) {
	if c.Width == 0 {
		c.Width = width
	}
	if c.SamplesPerPixel == 0 {
		c.SamplesPerPixel = samplesPerPixel
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = maxDepth
	}
	if c.AspectRatio == 0 {
		c.AspectRatio = aspectRatio
	}
}

// Height returns the image height for the configured width and aspect ratio
func (c *Config) Height() int {
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// SplitPolicy returns the parsed BVH split policy
func (c *Config) SplitPolicy() (geometry.SplitPolicy, error) {
	return geometry.ParseSplitPolicy(c.BVHPolicy)
}

// Validate checks that the configuration can be rendered
func (c *Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("%w: scene name is empty", ErrInvalidConfig)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidConfig, c.AspectRatio)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must not be negative, got %d", ErrInvalidConfig, c.Threads)
	}
	if c.AOSamples < 0 {
		return fmt.Errorf("%w: ambient occlusion samples must not be negative, got %d", ErrInvalidConfig, c.AOSamples)
	}
	if c.AOSamples > 0 && c.AODistance <= 0 {
		return fmt.Errorf("%w: ambient occlusion distance must be positive, got %g", ErrInvalidConfig, c.AODistance)
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("%w: preview width must not be negative, got %d", ErrInvalidConfig, c.PreviewWidth)
	}
	if _, err := c.SplitPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Upload && c.S3Bucket == "" {
		return fmt.Errorf("%w: upload requested but %s_S3_BUCKET is not set", ErrInvalidConfig, Prefix)
	}
	return nil
}
