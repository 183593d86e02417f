package uuidgen

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/uuidgen/random"
	"gopkg.in/yaml.v3"
)

// KindExternal selects the google/uuid backed generator.
const KindExternal = "external"

// Config is a serialisable representation of the generator configuration. It
// can be populated from YAML or JSON; zero-valued fields inherit defaults.
type Config struct {
	Source  SourceConfig  `json:"source" yaml:"source"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// SourceConfig selects the randomness backend.
type SourceConfig struct {
	// Kind is one of secure, insecure or external.
	Kind string `json:"kind" yaml:"kind"`
	// Seed pins the insecure engine; nil seeds from wall-clock seconds.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled"`
	ServiceName    string `json:"serviceName" yaml:"serviceName"`
	ServiceVersion string `json:"serviceVersion" yaml:"serviceVersion"`
	// OutputFile receives stdout exporter output; empty means os.Stdout.
	OutputFile string `json:"outputFile" yaml:"outputFile"`
}

type ServerConfig struct {
	Port     string `json:"port" yaml:"port"`
	MaxBatch int    `json:"maxBatch" yaml:"maxBatch"`
}

// DefaultConfig returns a Config populated with default values. Callers may
// modify the returned struct before passing it to NewFromConfig.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{Kind: random.KindSecure},
		Tracing: TracingConfig{
			ServiceName:    "uuidgen",
			ServiceVersion: "0.1.0",
		},
		Server: ServerConfig{
			Port:     ":8080",
			MaxBatch: 1000,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	switch c.Source.Kind {
	case random.KindSecure, random.KindInsecure, KindExternal:
	default:
		return fmt.Errorf("source.kind must be one of %s, %s, %s: got %q", random.KindSecure, random.KindInsecure, KindExternal, c.Source.Kind)
	}
	if c.Source.Seed != nil && c.Source.Kind != random.KindInsecure {
		return fmt.Errorf("source.seed is only supported by the %s source", random.KindInsecure)
	}
	if c.Server.MaxBatch <= 0 {
		return fmt.Errorf("server.maxBatch must be > 0")
	}
	return nil
}

// LoadConfig downloads a YAML config from URL (any afs supported scheme),
// expands ${env.KEY} expressions and overlays it on DefaultConfig.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal([]byte(expandEnv(string(data))), ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
