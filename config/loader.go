package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutputDir receives generated timetables unless overridden.
	DefaultOutputDir = "dist"
	// DefaultPort is the preview server port.
	DefaultPort = 16181
)

// Load reads and validates the application configuration. With an empty
// path it falls back to config.yml in the working directory, and a missing
// fallback file simply yields the defaults: every setting can also arrive
// via flags.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	explicit := path != ""
	if !explicit {
		path = "config.yml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return applyDefaults(cfg), nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return applyDefaults(cfg), nil
}

func applyDefaults(cfg AppConfig) AppConfig {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
	if len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = []string{"html", "pdf"}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	return cfg
}
