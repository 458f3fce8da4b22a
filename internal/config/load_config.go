package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"fix-package-file/internal/logger"
)

// LoadConfig reads the YAML config file at configFile. An empty path returns
// an empty Config. Unknown keys are rejected.
func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	if configFile == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", configFile, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to unmarshal config %s: %w", configFile, err)
	}

	// Relative paths in the file are relative to the file itself
	base := filepath.Dir(configFile)
	if cfg.Pack != "" && !filepath.IsAbs(cfg.Pack) {
		cfg.Pack = filepath.Join(base, cfg.Pack)
	}
	if cfg.Project != "" && !filepath.IsAbs(cfg.Project) {
		cfg.Project = filepath.Join(base, cfg.Project)
	}

	logger.Debug("[DEBUG] Loaded config from %s: pack=%q main=%q project=%q\n", configFile, cfg.Pack, cfg.Main, cfg.Project)
	return cfg, nil
}
