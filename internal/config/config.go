package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/nestcodec/internal/observability/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	DefaultOutputPath = "example.json"
	DefaultKind       = "int"
	DefaultValue      = 42
	DefaultDepth      = 8
	DefaultLogLevel   = "info"
)

// Config drives a single run: which value to write where, and which wrappers to render.
type Config struct {
	OutputPath  string `json:"output_path" yaml:"output_path"`
	Kind        string `json:"kind" yaml:"kind"`
	Value       uint64 `json:"value" yaml:"value"`
	Depth       uint   `json:"depth" yaml:"depth"`
	ChainDepths []uint `json:"chain_depths" yaml:"chain_depths"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		OutputPath:  DefaultOutputPath,
		Kind:        DefaultKind,
		Value:       DefaultValue,
		Depth:       DefaultDepth,
		ChainDepths: []uint{1, 2, 3},
		LogLevel:    DefaultLogLevel,
	}
}

// LoadYAML decodes r over the defaults. Keys missing from the document keep their default.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, nil
}

// LoadJSON decodes r over the defaults.
func LoadJSON(r io.Reader) (*Config, error) {
	c := Default()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return c, nil
}

// LoadFile picks the decoder from the file extension; anything but .json is read as YAML.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var c *Config
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("%w: output_path is required", ErrInvalidConfig)
	}
	if c.Kind == "" {
		return fmt.Errorf("%w: kind is required", ErrInvalidConfig)
	}
	if strings.ContainsAny(c.Kind, "\"\\") {
		return fmt.Errorf("%w: kind %q must not need escaping", ErrInvalidConfig, c.Kind)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info for invalid input.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelInfo
	}
	return level
}
