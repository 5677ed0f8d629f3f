// File: koanf.go
// Role: layered config loading (defaults -> optional YAML file -> env
// vars), following tomtom215-cartographus's internal/config/koanf.go
// pattern: defaults are populated directly on the Config struct (so a
// missing key in a later layer never resets a field to its zero value),
// then koanf layers the file and environment on top via Unmarshal.

package hdcconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the default config-file search.
const ConfigPathEnvVar = "HDC_CONFIG_PATH"

// DefaultConfigPaths lists the paths searched, in priority order, when
// ConfigPathEnvVar is unset.
var DefaultConfigPaths = []string{
	"hdc.yaml",
	"hdc.yml",
	"/etc/hdc/hdc.yaml",
}

// envMappings maps every HDC_-stripped, lowercased environment variable
// name to its koanf dotted path. The knob set is small enough that an
// explicit map stays readable. A name missing from the map is passed
// through unchanged, so a misspelled variable matches no Config field and
// is ignored without an error.
var envMappings = map[string]string{
	"dim":                     "dim",
	"num_features":            "num_features",
	"num_classes":             "num_classes",
	"num_levels":              "num_levels",
	"min_level":               "min_level",
	"max_level":               "max_level",
	"n_gram_size":             "n_gram_size",
	"window":                  "window",
	"downsample":              "downsample",
	"bipolar_mode":            "bipolar_mode",
	"normalize":               "normalize",
	"cut_angle_threshold":     "cut_angle_threshold",
	"precomputed_item_memory": "precomputed_item_memory",
	"use_genetic_item_memory": "use_genetic_item_memory",
	"validation_ratio":        "validation_ratio",
	"ga_population_size":      "ga.population_size",
	"ga_generations":          "ga.generations",
	"ga_crossover_rate":       "ga.crossover_rate",
	"ga_mutation_rate":        "ga.mutation_rate",
	"ga_tournament_size":      "ga.tournament_size",
	"ga_seed":                 "ga.seed",
	"ga_max_flips_cim":        "ga.max_flips_cim",
	"ga_selection_mode":       "ga.selection_mode",
	"ga_init_uniform":         "ga.init_uniform",
}

func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, "HDC_"))
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return key
}

// Load builds a Config from built-in defaults, an optional YAML file (see
// DefaultConfigPaths / ConfigPathEnvVar), then HDC_-prefixed environment
// variables, in that increasing priority order, and validates the result.
func Load() (*Config, error) {
	cfg := defaultConfig()

	k := koanf.New(".")

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("hdcconfig: loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("HDC_", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("hdcconfig: loading environment variables: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("hdcconfig: unmarshalling configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
