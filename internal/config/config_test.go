package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/bib2lod/rdf"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bib2lod.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []string{"bnodes", "dedupe", "convert"}, cfg.Actions)
	assert.Equal(t, rdf.FormatNTriples, cfg.Format())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
local_namespace: http://example.org/individual/
input_dir: /in
output_format: ttl
actions: [convert]
workers: 2
max_triples: 5000
strict_iris: true
index:
  path: /tmp/idx
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://example.org/individual/", cfg.LocalNamespace)
	assert.Equal(t, "/in", cfg.InputDir)
	assert.Equal(t, "./data/out", cfg.OutputDir)
	assert.Equal(t, "turtle", cfg.OutputFormat)
	assert.Equal(t, []string{"convert"}, cfg.Actions)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(5000), cfg.MaxTriples)
	assert.True(t, cfg.StrictIRIs)
	assert.Equal(t, "/tmp/idx", cfg.Index.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, rdf.DefaultMaxLineBytes, cfg.MaxLineBytes)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "workers: [not a number"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"no namespace":       func(c *Config) { c.LocalNamespace = "" },
		"namespace not url":  func(c *Config) { c.LocalNamespace = "not a url/" },
		"namespace open end": func(c *Config) { c.LocalNamespace = "http://example.org/x" },
		"bad format":         func(c *Config) { c.OutputFormat = "rdfxml" },
		"nquads output":      func(c *Config) { c.OutputFormat = "nquads" },
		"no actions":         func(c *Config) { c.Actions = nil },
		"unknown action":     func(c *Config) { c.Actions = []string{"bnodes", "reason"} },
		"zero workers":       func(c *Config) { c.Workers = 0 },
		"bad level":          func(c *Config) { c.Log.Level = "loud" },
		"tiny lines":         func(c *Config) { c.MaxLineBytes = 10 },
		"negative triples":   func(c *Config) { c.MaxTriples = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Strict = true
	data, err := cfg.Marshal()
	require.NoError(t, err)

	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
