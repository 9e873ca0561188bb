package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the chart builder service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// Export archive configuration
	StorageMode     string `env:"STORAGE_MODE,default=local"`
	GCSBucket       string `env:"GCS_BUCKET"`
	LocalExportsDir string `env:"LOCAL_EXPORTS_DIR,default=./exports"`

	// Builder page configuration
	EChartsScriptURL string `env:"ECHARTS_SCRIPT_URL,default=https://cdn.jsdelivr.net/npm/echarts@5.6.0/dist/echarts.min.js"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
