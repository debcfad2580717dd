package config

// File is the structure of the .zhipistat.yaml configuration file.
// Zero values leave the corresponding option unchanged.
type File struct {
	// TopN overrides DefaultTopN.
	TopN int `yaml:"top_n,omitempty"`

	// CrossTabMaxCols overrides DefaultCrossTabMaxCols.
	CrossTabMaxCols int `yaml:"crosstab_max_cols,omitempty"`

	// MissingTopN overrides DefaultMissingTopN.
	MissingTopN int `yaml:"missing_top_n,omitempty"`

	// Charts enables pie charts.
	Charts bool `yaml:"charts,omitempty"`

	// Title overrides DefaultTitle.
	Title string `yaml:"title,omitempty"`

	// Format overrides DefaultFormat.
	Format string `yaml:"format,omitempty"`
}

// Apply copies the options set in the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.TopN != 0 {
		cfg.TopN = f.TopN
	}
	if f.CrossTabMaxCols != 0 {
		cfg.CrossTabMaxCols = f.CrossTabMaxCols
	}
	if f.MissingTopN != 0 {
		cfg.MissingTopN = f.MissingTopN
	}
	if f.Charts {
		cfg.Charts = true
	}
	if f.Title != "" {
		cfg.Title = f.Title
	}
	if f.Format != "" {
		cfg.Format = f.Format
	}
}
