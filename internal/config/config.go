// Package config loads the bib2lod YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/bib2lod/internal/pipeline"
	"github.com/geoknoesis/bib2lod/rdf"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the run configuration.
type Config struct {
	LocalNamespace string   `yaml:"local_namespace" validate:"required,url,nsend"`
	InputDir       string   `yaml:"input_dir" validate:"required"`
	OutputDir      string   `yaml:"output_dir" validate:"required"`
	OutputFormat   string   `yaml:"output_format" validate:"required,rdfformat"`
	Actions        []string `yaml:"actions" validate:"required,min=1,dive,action"`
	Workers        int      `yaml:"workers" validate:"min=1,max=256"`
	Strict         bool     `yaml:"strict"`
	MaxLineBytes   int      `yaml:"max_line_bytes" validate:"min=1024"`
	MaxTriples     int64    `yaml:"max_triples" validate:"min=0"`
	StrictIRIs     bool     `yaml:"strict_iris"`

	Index   IndexConfig   `yaml:"index"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// IndexConfig configures the dedupe index.
type IndexConfig struct {
	// Path of the BadgerDB directory. Empty keeps the index in memory.
	Path       string `yaml:"path"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Dir receives a JSON log file when set.
	Dir string `yaml:"dir"`
}

// MetricsConfig configures metrics export.
type MetricsConfig struct {
	// Textfile receives the Prometheus text exposition at the end of a run.
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LocalNamespace: "http://ld4l.library.cornell.edu/individual/",
		InputDir:       "./data/bibframe",
		OutputDir:      "./data/out",
		OutputFormat:   string(rdf.FormatNTriples),
		Actions:        pipeline.Labels(),
		Workers:        4,
		MaxLineBytes:   rdf.DefaultMaxLineBytes,
		Log:            LogConfig{Level: "info"},
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("rdfformat", validateFormat)
	_ = validate.RegisterValidation("action", validateAction)
	_ = validate.RegisterValidation("nsend", validateNamespaceEnd)
}

func validateFormat(fl validator.FieldLevel) bool {
	f, ok := rdf.ParseFormat(fl.Field().String())
	return ok && f != rdf.FormatNQuads
}

func validateAction(fl validator.FieldLevel) bool {
	_, err := pipeline.Lookup(fl.Field().String())
	return err == nil
}

func validateNamespaceEnd(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return strings.HasSuffix(v, "/") || strings.HasSuffix(v, "#")
}

// Load reads path over the defaults. An empty path returns the defaults.
// The result is not validated; call Validate once overrides are applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg and normalizes the output format name.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	f, _ := rdf.ParseFormat(c.OutputFormat)
	c.OutputFormat = string(f)
	return nil
}

// Format returns the parsed output format.
func (c *Config) Format() rdf.Format {
	f, _ := rdf.ParseFormat(c.OutputFormat)
	return f
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
