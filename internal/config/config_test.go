package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default TopN is 10", func(t *testing.T) {
		t.Parallel()
		if cfg.TopN != 10 {
			t.Errorf("expected TopN to be 10, got %d", cfg.TopN)
		}
	})

	t.Run("default CrossTabMaxCols is 8", func(t *testing.T) {
		t.Parallel()
		if cfg.CrossTabMaxCols != 8 {
			t.Errorf("expected CrossTabMaxCols to be 8, got %d", cfg.CrossTabMaxCols)
		}
	})

	t.Run("default MissingTopN is 20", func(t *testing.T) {
		t.Parallel()
		if cfg.MissingTopN != 20 {
			t.Errorf("expected MissingTopN to be 20, got %d", cfg.MissingTopN)
		}
	})

	t.Run("default Format is markdown", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != FormatMarkdown {
			t.Errorf("expected Format to be %q, got %q", FormatMarkdown, cfg.Format)
		}
	})

	t.Run("default Title is set", func(t *testing.T) {
		t.Parallel()
		if cfg.Title != DefaultTitle {
			t.Errorf("expected Title to be %q, got %q", DefaultTitle, cfg.Title)
		}
	})

	t.Run("charts are off by default", func(t *testing.T) {
		t.Parallel()
		if cfg.Charts {
			t.Error("expected Charts to be false")
		}
	})
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.InputPath = "in.csv"
		cfg.OutputPath = "out.md"
		return cfg
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid config", modify: func(*Config) {}, wantErr: nil},
		{name: "missing input", modify: func(c *Config) { c.InputPath = "" }, wantErr: ErrNoInput},
		{name: "missing output", modify: func(c *Config) { c.OutputPath = "" }, wantErr: ErrNoOutput},
		{name: "missing both reports input first", modify: func(c *Config) { c.InputPath, c.OutputPath = "", "" }, wantErr: ErrNoInput},
		{name: "zero top-n", modify: func(c *Config) { c.TopN = 0 }, wantErr: ErrInvalidTopN},
		{name: "negative top-n", modify: func(c *Config) { c.TopN = -3 }, wantErr: ErrInvalidTopN},
		{name: "zero crosstab columns", modify: func(c *Config) { c.CrossTabMaxCols = 0 }, wantErr: ErrInvalidCrossTabCols},
		{name: "zero missing limit", modify: func(c *Config) { c.MissingTopN = 0 }, wantErr: ErrInvalidMissingTopN},
		{name: "unknown format", modify: func(c *Config) { c.Format = "html" }, wantErr: ErrInvalidFormat},
		{name: "json format", modify: func(c *Config) { c.Format = FormatJSON }, wantErr: nil},
		{name: "unknown log format", modify: func(c *Config) { c.LogFormat = "logfmt" }, wantErr: ErrInvalidLogFormat},
		{name: "json log format", modify: func(c *Config) { c.LogFormat = LogFormatJSON }, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestFileApply tests overlaying file values on a config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("set values override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{TopN: 5, CrossTabMaxCols: 3, MissingTopN: 7, Charts: true, Title: "T", Format: FormatJSON}
		f.Apply(cfg)

		if cfg.TopN != 5 || cfg.CrossTabMaxCols != 3 || cfg.MissingTopN != 7 {
			t.Errorf("unexpected limits: %+v", cfg)
		}
		if !cfg.Charts {
			t.Error("expected Charts to be true")
		}
		if cfg.Title != "T" {
			t.Errorf("expected title T, got %q", cfg.Title)
		}
		if cfg.Format != FormatJSON {
			t.Errorf("expected json format, got %q", cfg.Format)
		}
	})

	t.Run("zero values keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if *cfg != *NewConfig() {
			t.Errorf("expected defaults to be unchanged, got %+v", cfg)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		var f *File
		f.Apply(cfg)

		if cfg.TopN != DefaultTopN {
			t.Errorf("expected default TopN, got %d", cfg.TopN)
		}
	})
}

// TestLoadConfigFile tests loading YAML configuration files.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "top_n: 15\ncrosstab_max_cols: 4\nmissing_top_n: 30\ncharts: true\ntitle: \"Report\"\nformat: json\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.TopN != 15 || cf.CrossTabMaxCols != 4 || cf.MissingTopN != 30 {
			t.Errorf("unexpected limits: %+v", cf)
		}
		if !cf.Charts || cf.Title != "Report" || cf.Format != FormatJSON {
			t.Errorf("unexpected values: %+v", cf)
		}
	})

	t.Run("empty file is valid", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, nil, 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *cf != (File{}) {
			t.Errorf("expected empty file config, got %+v", cf)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "typo.yaml")
		if err := os.WriteFile(path, []byte("topn: 3\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Fatal("expected error for unknown key")
		}
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("top_n: [1, 2\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Fatal("expected error for malformed YAML")
		}
	})
}

// TestFindConfigFile tests configuration file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("top_n: 3\n"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %q", got)
		}
	})
}

// TestXDGConfigDir tests the XDG directory helper.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected %q to end with %q", dir, AppName)
	}
}
