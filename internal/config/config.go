package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/fecgen/internal/anomaly"
	"github.com/cleared-dev/fecgen/internal/fec"
)

// FileName is the default config file name.
const FileName = "fecgen.yaml"

// DateFormat is the layout of period dates in the config file.
const DateFormat = "2006-01-02"

// Output format selectors.
const (
	FormatText        = "text"
	FormatSpreadsheet = "spreadsheet"
	FormatBoth        = "both"
)

// Config represents the top-level fecgen.yaml configuration.
type Config struct {
	Company    CompanyConfig    `yaml:"company"`
	Period     PeriodConfig     `yaml:"period"`
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
	Batch      BatchConfig      `yaml:"batch"`
	Log        LogConfig        `yaml:"log"`
}

// CompanyConfig identifies the company the ledger belongs to.
type CompanyConfig struct {
	Name  string `yaml:"name" validate:"required"`
	Siren string `yaml:"siren" validate:"required,len=9,number"`
}

// PeriodConfig bounds the generated dates, both ends inclusive.
type PeriodConfig struct {
	Start string `yaml:"start" validate:"required,datetime=2006-01-02"`
	End   string `yaml:"end" validate:"required,datetime=2006-01-02"`
}

// GenerationConfig controls synthesis and anomaly injection.
type GenerationConfig struct {
	Transactions int      `yaml:"transactions" validate:"gte=1"`
	AnomalyRate  float64  `yaml:"anomaly_rate" validate:"gte=0,lt=1"`
	AnomalyKinds []string `yaml:"anomaly_kinds"`
	Seed         uint64   `yaml:"seed"` // 0 = random
	Chart        string   `yaml:"chart,omitempty"`
}

// OutputConfig controls where and how files are written.
type OutputConfig struct {
	Format   string `yaml:"format" validate:"oneof=text spreadsheet both"`
	Dir      string `yaml:"dir" validate:"required"`
	BaseName string `yaml:"base_name" validate:"required"`
}

// BatchConfig controls multi-file generation. Count above 1 selects batch
// mode.
type BatchConfig struct {
	Count  int    `yaml:"count" validate:"gte=1"`
	Prefix string `yaml:"prefix" validate:"required"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Pretty bool   `yaml:"pretty"`
}

// FieldError reports one invalid configuration value.
type FieldError struct {
	Field  string // YAML path, e.g. "period.start"
	Value  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

// Load reads a fecgen.yaml file from disk. The result is not validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config covering the current calendar year.
func Default() *Config {
	year := time.Now().Year()
	return &Config{
		Company: CompanyConfig{
			Name:  "ENTREPRISE EXEMPLE SAS",
			Siren: "123456789",
		},
		Period: PeriodConfig{
			Start: fmt.Sprintf("%d-01-01", year),
			End:   fmt.Sprintf("%d-12-31", year),
		},
		Generation: GenerationConfig{
			Transactions: 500,
			AnomalyRate:  0.05,
		},
		Output: OutputConfig{
			Format:   FormatText,
			Dir:      "output",
			BaseName: "FEC_GENERATED",
		},
		Batch: BatchConfig{
			Count:  1,
			Prefix: "FEC_ENTREPRISE_",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: true,
		},
	}
}

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel  = "FECGEN_LOG_LEVEL"
	EnvOutputDir = "FECGEN_OUTPUT_DIR"
	EnvSeed      = "FECGEN_SEED"
)

// ApplyEnv loads the given .env files (missing files are ignored) and then
// overrides fields from FECGEN_* variables.
func (c *Config) ApplyEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return FieldError{Field: "generation.seed", Value: v, Reason: "must be a non-negative integer (" + EnvSeed + ")"}
		}
		c.Generation.Seed = seed
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks every field and returns all problems found, joined. Each
// problem is a FieldError.
func (c *Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}
		for _, fe := range verrs {
			errs = append(errs, fieldError(fe))
		}
	}

	periodFailed := slices.ContainsFunc(errs, func(err error) bool {
		return strings.HasPrefix(err.(FieldError).Field, "period.")
	})
	if !periodFailed {
		if _, _, err := c.Period.Range(); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := c.Kinds(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// fieldError maps a validator failure to a FieldError named after the YAML
// path.
func fieldError(fe validator.FieldError) FieldError {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var reason string
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "len":
		reason = "must be " + fe.Param() + " characters long"
	case "number":
		reason = "must contain only digits"
	case "datetime":
		reason = "must be a date formatted YYYY-MM-DD"
	case "gte":
		reason = "must be at least " + fe.Param()
	case "lt":
		reason = "must be less than " + fe.Param()
	case "oneof":
		reason = "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		reason = "failed " + fe.Tag() + " check"
	}
	return FieldError{Field: field, Value: fmt.Sprint(fe.Value()), Reason: reason}
}

// Range parses the period. Start must not be after End.
func (p PeriodConfig) Range() (start, end time.Time, err error) {
	start, err = time.Parse(DateFormat, p.Start)
	if err != nil {
		return time.Time{}, time.Time{}, FieldError{Field: "period.start", Value: p.Start, Reason: "must be a date formatted YYYY-MM-DD"}
	}
	end, err = time.Parse(DateFormat, p.End)
	if err != nil {
		return time.Time{}, time.Time{}, FieldError{Field: "period.end", Value: p.End, Reason: "must be a date formatted YYYY-MM-DD"}
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, FieldError{Field: "period.end", Value: p.End, Reason: "must not be before period.start " + p.Start}
	}
	return start, end, nil
}

// Kinds returns the configured anomaly kinds; nil means all of them.
func (c *Config) Kinds() ([]anomaly.Kind, error) {
	kinds, err := anomaly.ParseKinds(c.Generation.AnomalyKinds)
	if err != nil {
		return nil, FieldError{
			Field:  "generation.anomaly_kinds",
			Value:  strings.Join(c.Generation.AnomalyKinds, ","),
			Reason: err.Error(),
		}
	}
	return kinds, nil
}

// Formats returns the output formats selected by output.format.
func (c *Config) Formats() []fec.Format {
	switch c.Output.Format {
	case FormatSpreadsheet:
		return []fec.Format{fec.FormatSpreadsheet}
	case FormatBoth:
		return []fec.Format{fec.FormatText, fec.FormatSpreadsheet}
	default:
		return []fec.Format{fec.FormatText}
	}
}

// BatchMode reports whether more than one file is requested.
func (c *Config) BatchMode() bool {
	return c.Batch.Count > 1
}
