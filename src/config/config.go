// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding the config path.
const EnvConfigFile = "PEM_OUTLINE_CONFIG_FILE"

// Defaults applied before any file is read.
const (
	DefaultTimeoutSeconds = 30
)

// DefaultCertificateLabels are the labels decoded as certificates when the
// configuration does not say otherwise.
var DefaultCertificateLabels = []string{"CERTIFICATE", "TRUSTED CERTIFICATE"}

// ErrInvalidConfig indicates that a config file does not match the schema.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var (
	//go:embed schema.json
	schemaJSON []byte

	//go:embed config.example.yaml
	exampleYAML string
)

// Format is a configuration file syntax.
type Format int

const (
	// FormatJSON represents JSON configuration format (.json)
	FormatJSON Format = iota
	// FormatYAML represents YAML configuration format (.yaml, .yml)
	FormatYAML
)

// Config represents the pem-outline configuration structure.
type Config struct {
	// Defaults: Default settings for the front ends
	Defaults struct {
		// Format: CLI output format; empty means auto-detect
		Format string `json:"format" yaml:"format"`
		// Timeout: Upper bound in seconds for one analysis
		Timeout int `json:"timeoutSeconds" yaml:"timeoutSeconds"`
	} `json:"defaults" yaml:"defaults"`

	// Analysis: Settings passed to the analyzer
	Analysis struct {
		// CertificateLabels: Block labels decoded as X.509 certificates
		CertificateLabels []string `json:"certificateLabels" yaml:"certificateLabels"`
		// ReportLabelMismatch: Warn when END and BEGIN labels differ
		ReportLabelMismatch bool `json:"reportLabelMismatch" yaml:"reportLabelMismatch"`
	} `json:"analysis" yaml:"analysis"`

	// Logging: Log output of the front ends
	Logging struct {
		// Silent: Suppress MCP server logs
		Silent bool `json:"silent" yaml:"silent"`
		// Debug: Log per-block decode failures
		Debug bool `json:"debug" yaml:"debug"`
		// File: Log destination; empty means stderr
		File string `json:"file" yaml:"file"`
	} `json:"logging" yaml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Defaults.Timeout = DefaultTimeoutSeconds
	c.Analysis.CertificateLabels = append([]string(nil), DefaultCertificateLabels...)
	c.Analysis.ReportLabelMismatch = true
	c.Logging.Silent = true
	return c
}

// Timeout returns the analysis timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Defaults.Timeout) * time.Second
}

// Example returns the annotated example configuration in YAML.
func Example() string { return exampleYAML }

// DetectFormat determines the configuration file format based on file
// extension. Anything other than .yaml or .yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load loads the configuration from path, or from the file named by
// [EnvConfigFile] when path is empty, or returns [Default] when neither is
// set.
//
// Configuration Priority:
//  1. Default values are set
//  2. EnvConfigFile is checked if path is empty
//  3. Config file values override defaults after schema validation
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, DetectFormat(path))
}

// Parse validates data against the schema and merges it over the defaults.
func Parse(data []byte, format Format) (*Config, error) {
	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	// an empty YAML document decodes to nil
	if doc == nil {
		return Default(), nil
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	c := Default()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return c, nil
}

func validate(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
