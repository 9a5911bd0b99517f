package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"shotpress/internal/fault"
	"shotpress/internal/redact"
)

// DefaultOutput is the PDF written into the project directory when no
// output path is given.
const DefaultOutput = "project_files.pdf"

// Config is the single validated configuration for one run. Components
// receive it (or slices of it) explicitly; nothing reads shared globals.
type Config struct {
	ProjectDir      string   `mapstructure:"-"`
	CodeGlobs       []string `mapstructure:"code"`
	ScreenshotGlobs []string `mapstructure:"screenshots"`
	Output          string   `mapstructure:"output"`
	HideStart       string   `mapstructure:"hide_start"`
	HideEnd         string   `mapstructure:"hide_end"`
	RegionsFile     string   `mapstructure:"regions"`
	KeepTemp        bool     `mapstructure:"keep_temp"`
}

// Markers returns the configured marker pair.
func (c Config) Markers() redact.Markers {
	return redact.Markers{Start: c.HideStart, End: c.HideEnd}
}

// OutputPath returns the output resolved against the project directory.
func (c Config) OutputPath() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.ProjectDir, c.Output)
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		ProjectDir: ".",
		Output:     DefaultOutput,
		HideStart:  redact.DefaultStart,
		HideEnd:    redact.DefaultEnd,
	}
}

// Overrides carries flag values. Zero values mean "flag not given", except
// KeepTemp which is guarded by KeepTempSet.
type Overrides struct {
	CodeGlobs       []string
	ScreenshotGlobs []string
	Output          string
	HideStart       string
	HideEnd         string
	RegionsFile     string
	KeepTemp        bool
	KeepTempSet     bool
}

// Load builds the effective config for projectDir by layering:
// defaults <- shotpress.yaml in the project dir <- SHOTPRESS_* env <- flags.
func Load(projectDir string, ov Overrides) (Config, error) {
	cfg := Default()
	if projectDir != "" {
		cfg.ProjectDir = projectDir
	}

	v := viper.New()
	v.SetConfigName("shotpress")
	v.SetConfigType("yaml")
	v.AddConfigPath(cfg.ProjectDir)

	v.SetDefault("output", cfg.Output)
	v.SetDefault("hide_start", cfg.HideStart)
	v.SetDefault("hide_end", cfg.HideEnd)
	v.SetDefault("regions", "")
	v.SetDefault("keep_temp", false)
	v.SetDefault("code", []string{})
	v.SetDefault("screenshots", []string{})

	v.SetEnvPrefix("SHOTPRESS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fault.Wrap(fault.Config, "reading config file", v.ConfigFileUsed(), err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fault.Wrap(fault.Config, "parsing config", v.ConfigFileUsed(), err)
	}

	applyOverrides(&cfg, ov)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyOverrides(cfg *Config, ov Overrides) {
	if len(ov.CodeGlobs) > 0 {
		cfg.CodeGlobs = ov.CodeGlobs
	}
	if len(ov.ScreenshotGlobs) > 0 {
		cfg.ScreenshotGlobs = ov.ScreenshotGlobs
	}
	if ov.Output != "" {
		cfg.Output = ov.Output
	}
	if ov.HideStart != "" {
		cfg.HideStart = ov.HideStart
	}
	if ov.HideEnd != "" {
		cfg.HideEnd = ov.HideEnd
	}
	if ov.RegionsFile != "" {
		cfg.RegionsFile = ov.RegionsFile
	}
	if ov.KeepTempSet {
		cfg.KeepTemp = ov.KeepTemp
	}
}

// Validate checks the config once at startup. Glob match counts are checked
// later, after resolution, by the caller.
func Validate(cfg Config) error {
	if cfg.HideStart == "" || cfg.HideEnd == "" {
		return fault.New(fault.Config, "hide markers must not be empty", "")
	}
	if cfg.HideStart == cfg.HideEnd {
		return fault.New(fault.Config, "hide-start and hide-end markers must differ", "")
	}

	info, err := os.Stat(cfg.ProjectDir)
	if err != nil {
		return fault.Wrap(fault.Config, "project directory", cfg.ProjectDir, err)
	}
	if !info.IsDir() {
		return fault.New(fault.Config, "project path is not a directory", cfg.ProjectDir)
	}

	if cfg.Output == "" {
		return fault.New(fault.Config, "output path must not be empty", "")
	}
	outDir := filepath.Dir(cfg.OutputPath())
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		return fault.New(fault.Config, "output directory does not exist", outDir)
	}
	return nil
}

// String renders the effective config for the startup progress line.
func (c Config) String() string {
	return fmt.Sprintf("project=%s output=%s markers=%q..%q", c.ProjectDir, c.Output, c.HideStart, c.HideEnd)
}
