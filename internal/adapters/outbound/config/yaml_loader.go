// Package config loads validator configuration from .aeoscan.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aeoscan/aeoscan/internal/domain"
)

const fileName = ".aeoscan.yaml"

// Environment fallbacks for the API keys, so secrets can stay out of the
// config file.
const (
	envPageSpeedKey    = "AEOSCAN_PAGESPEED_API_KEY"
	envOpenPageRankKey = "AEOSCAN_OPENPAGERANK_API_KEY"
)

// YAMLLoader implements domain.ConfigLoader by reading .aeoscan.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .aeoscan.yaml from dir. Returns DefaultConfig when the file
// does not exist. Explicit values win over defaults; API keys fall back to
// the environment when unset.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	}

	if cfg.PageSpeedAPIKey == "" {
		cfg.PageSpeedAPIKey = os.Getenv(envPageSpeedKey)
	}
	if cfg.OpenPageRankAPIKey == "" {
		cfg.OpenPageRankAPIKey = os.Getenv(envOpenPageRankKey)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
