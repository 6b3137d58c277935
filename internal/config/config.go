// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-cli/internal/document"
	"github.com/jonathan/resume-cli/internal/optimizer"
	"github.com/jonathan/resume-cli/internal/validation"
)

// EnvConfigPath names the config file used when --config is not given
const EnvConfigPath = "RESUME_CLI_CONFIG"

// DefaultFileName is what `config init` writes when no path is given
const DefaultFileName = "resume-cli.json"

// Config represents the CLI configuration loaded from a JSON, YAML or TOML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty" yaml:"resume,omitempty" toml:"resume,omitempty"`       // Resume file; empty uses the built-in resume
	Template string `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty"` // Custom LaTeX template

	// Scoring
	ExperienceLevel       string `json:"experience_level,omitempty" yaml:"experience_level,omitempty" toml:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	StrictMode            bool   `json:"strict_mode,omitempty" yaml:"strict_mode,omitempty" toml:"strict_mode,omitempty"`
	IncludeFormatAnalysis bool   `json:"include_format_analysis,omitempty" yaml:"include_format_analysis,omitempty" toml:"include_format_analysis,omitempty"`
	TargetScore           int    `json:"target_score,omitempty" yaml:"target_score,omitempty" toml:"target_score,omitempty" validate:"omitempty,min=1,max=100"`
	Industry              string `json:"industry,omitempty" yaml:"industry,omitempty" toml:"industry,omitempty" validate:"omitempty,oneof=technology data-science marketing finance healthcare"`

	// Output
	OutputFormat string `json:"output_format,omitempty" yaml:"output_format,omitempty" toml:"output_format,omitempty" validate:"omitempty,oneof=text color json markdown html latex bio"`
	ReportFormat string `json:"report_format,omitempty" yaml:"report_format,omitempty" toml:"report_format,omitempty" validate:"omitempty,oneof=json text html"`

	// Writing checks
	MaxBulletChars int      `json:"max_bullet_chars,omitempty" yaml:"max_bullet_chars,omitempty" toml:"max_bullet_chars,omitempty" validate:"omitempty,min=40,max=1000"`
	WeakPhrases    []string `json:"weak_phrases,omitempty" yaml:"weak_phrases,omitempty" toml:"weak_phrases,omitempty" validate:"dive,required"`

	// Fetching
	UseBrowser        bool    `json:"use_browser,omitempty" yaml:"use_browser,omitempty" toml:"use_browser,omitempty"` // Headless fallback for SPA job boards
	BrowserTimeout    int     `json:"browser_timeout_seconds,omitempty" yaml:"browser_timeout_seconds,omitempty" toml:"browser_timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
	RequestsPerSecond float64 `json:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty" toml:"requests_per_second,omitempty" validate:"omitempty,gt=0,lte=50"`
	Concurrency       int     `json:"concurrency,omitempty" yaml:"concurrency,omitempty" toml:"concurrency,omitempty" validate:"omitempty,min=1,max=32"`

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty" toml:"verbose,omitempty"`
}

// Defaults returns the values used when neither config nor flags set a field.
func Defaults() Config {
	return Config{
		TargetScore:       80,
		Industry:          optimizer.DefaultIndustry,
		OutputFormat:      "text",
		ReportFormat:      "text",
		MaxBulletChars:    validation.DefaultMaxBulletChars,
		BrowserTimeout:    30,
		RequestsPerSecond: 2,
		Concurrency:       4,
	}
}

// ResolvePath returns flagPath, or the path named by RESUME_CLI_CONFIG, or "".
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvConfigPath)
}

// LoadConfig loads configuration from a .json, .yaml/.yml or .toml file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	format := document.FormatFromPath(path)
	if format == "" {
		return nil, fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := document.Decode(data, format, "", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg to path in the format implied by its extension.
func Save(path string, cfg Config) error {
	format := document.FormatFromPath(path)
	if format == "" {
		return fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}
	data, err := document.Encode(cfg, format)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Every problem is reported, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("config error: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fmt.Errorf("config error: %s fails %q (value %v)", fe.Namespace(), describeTag(fe), fe.Value()))
		}
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("config error: resume file not found: %s", c.Resume))
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			errs = append(errs, fmt.Errorf("config error: template file not found: %s", c.Template))
		}
	}

	return errors.Join(errs...)
}

func describeTag(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.ExperienceLevel == "" {
		result.ExperienceLevel = defaults.ExperienceLevel
	}
	if result.Industry == "" {
		result.Industry = defaults.Industry
	}
	if result.OutputFormat == "" {
		result.OutputFormat = defaults.OutputFormat
	}
	if result.ReportFormat == "" {
		result.ReportFormat = defaults.ReportFormat
	}
	if len(result.WeakPhrases) == 0 {
		result.WeakPhrases = defaults.WeakPhrases
	}

	if result.TargetScore == 0 {
		result.TargetScore = defaults.TargetScore
	}
	if result.MaxBulletChars == 0 {
		result.MaxBulletChars = defaults.MaxBulletChars
	}
	if result.BrowserTimeout == 0 {
		result.BrowserTimeout = defaults.BrowserTimeout
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.RequestsPerSecond == 0 {
		result.RequestsPerSecond = defaults.RequestsPerSecond
	}

	// Bool fields: cannot distinguish unset from false, so set-to-true wins
	result.StrictMode = result.StrictMode || defaults.StrictMode
	result.IncludeFormatAnalysis = result.IncludeFormatAnalysis || defaults.IncludeFormatAnalysis
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
