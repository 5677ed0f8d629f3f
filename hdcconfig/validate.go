// File: validate.go
// Role: range/consistency checks over Config, the ConfigInvalid category
// spec.md §7 names (e.g. "L <= 1 to GA", "negative gene").

package hdcconfig

// Validate reports ErrConfigInvalid if any knob is out of its documented
// range, or if the GA knobs are inconsistent with each other whenever the
// genetic item memory is enabled.
func (c *Config) Validate() error {
	switch {
	case c.Dim <= 0,
		c.NumFeatures <= 0,
		c.NumClasses < 2,
		c.NumLevels <= 1,
		!(c.MinLevel < c.MaxLevel),
		c.NGramSize <= 0,
		c.Window < 0,
		c.Window > 0 && c.Window < c.NGramSize,
		c.Downsample <= 0,
		c.CutAngleThreshold < -1 || c.CutAngleThreshold > 1,
		c.ValidationRatio < 0 || c.ValidationRatio >= 1:
		return ErrConfigInvalid
	}

	if c.UseGeneticItemMemory {
		ga := c.GA
		switch ga.SelectionMode {
		case "PARETO", "MULTI", "ACCURACY":
		default:
			return ErrConfigInvalid
		}
		switch {
		case ga.PopulationSize < 2,
			ga.Generations < 0,
			ga.CrossoverRate < 0 || ga.CrossoverRate > 1,
			ga.MutationRate < 0 || ga.MutationRate > 1,
			ga.TournamentSize < 1 || ga.TournamentSize > ga.PopulationSize,
			ga.MaxFlipsCiM < 0:
			return ErrConfigInvalid
		}
	}
	return nil
}
