// File: config.go
// Role: the Config struct (every spec.md §6 knob) and its built-in
// defaults.

package hdcconfig

// GAConfig collects the genetic optimizer's knobs (the GA_* family in
// spec.md §6).
type GAConfig struct {
	PopulationSize int     `koanf:"population_size"`
	Generations    int     `koanf:"generations"`
	CrossoverRate  float64 `koanf:"crossover_rate"`
	MutationRate   float64 `koanf:"mutation_rate"`
	TournamentSize int     `koanf:"tournament_size"`
	Seed           uint64  `koanf:"seed"`
	MaxFlipsCiM    int     `koanf:"max_flips_cim"`
	SelectionMode  string  `koanf:"selection_mode"` // PARETO, MULTI, or ACCURACY
	InitUniform    bool    `koanf:"init_uniform"`   // true: uniform random-weights init, false: equal split
}

// Config is the full configuration surface spec.md §6 enumerates.
type Config struct {
	Dim                    int     `koanf:"dim"`
	NumFeatures            int     `koanf:"num_features"`
	NumClasses             int     `koanf:"num_classes"`
	NumLevels              int     `koanf:"num_levels"`
	MinLevel               float64 `koanf:"min_level"`
	MaxLevel               float64 `koanf:"max_level"`
	NGramSize              int     `koanf:"n_gram_size"`
	Window                 int     `koanf:"window"`
	Downsample             int     `koanf:"downsample"`
	BipolarMode            bool    `koanf:"bipolar_mode"`
	Normalize              bool    `koanf:"normalize"`
	CutAngleThreshold      float64 `koanf:"cut_angle_threshold"`
	PrecomputedItemMemory  bool    `koanf:"precomputed_item_memory"`
	UseGeneticItemMemory   bool    `koanf:"use_genetic_item_memory"`
	ValidationRatio        float64 `koanf:"validation_ratio"`

	GA GAConfig `koanf:"ga"`
}

// defaultConfig returns the built-in defaults, applied before any file or
// environment override.
func defaultConfig() *Config {
	return &Config{
		Dim:                   10000,
		NumFeatures:           1,
		NumClasses:            2,
		NumLevels:             100,
		MinLevel:              0,
		MaxLevel:              1,
		NGramSize:             5,
		Window:                0,
		Downsample:            1,
		BipolarMode:           false,
		Normalize:             true,
		CutAngleThreshold:     0.9,
		PrecomputedItemMemory: false,
		UseGeneticItemMemory:  false,
		ValidationRatio:       0.2,
		GA: GAConfig{
			PopulationSize: 32,
			Generations:    20,
			CrossoverRate:  0.7,
			MutationRate:   0.1,
			TournamentSize: 3,
			Seed:           1,
			MaxFlipsCiM:    10000,
			SelectionMode:  "PARETO",
			InitUniform:    true,
		},
	}
}
