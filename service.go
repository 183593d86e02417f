package uuidgen

import (
	"context"
	"fmt"

	"github.com/viant/uuidgen/identifier"
	"github.com/viant/uuidgen/random"
	"github.com/viant/uuidgen/tracing"
)

// Service is the façade tying a configured generator to tracing.
type Service struct {
	config     *Config
	kind       string
	generator  identifier.Generator
	tracingErr error
}

// Kind returns the name of the backing source.
func (s *Service) Kind() string {
	return s.kind
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Generate returns a single version 4 UUID.
func (s *Service) Generate(ctx context.Context) (id identifier.UUID, err error) {
	_, span := tracing.StartSpan(ctx, "uuidgen.generate")
	span.WithAttributes(map[string]string{"uuid.source": s.kind})
	defer func() { tracing.EndSpan(span, err) }()
	return s.generator.Build()
}

// GenerateN returns n UUIDs, stopping at the first failure.
func (s *Service) GenerateN(ctx context.Context, n int) ([]identifier.UUID, error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid uuid count: %d", n)
	}
	ret := make([]identifier.UUID, 0, n)
	for i := 0; i < n; i++ {
		id, err := s.Generate(ctx)
		if err != nil {
			return nil, err
		}
		ret = append(ret, id)
	}
	return ret, nil
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.tracingErr != nil {
		return fmt.Errorf("failed to initialise tracing: %w", s.tracingErr)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.config.Tracing.Enabled {
		t := s.config.Tracing
		if err := tracing.Init(t.ServiceName, t.ServiceVersion, t.OutputFile); err != nil {
			return fmt.Errorf("failed to initialise tracing: %w", err)
		}
	}
	if s.generator != nil {
		return nil
	}
	return s.ensureGenerator()
}

func (s *Service) ensureGenerator() error {
	s.kind = s.config.Source.Kind
	switch s.kind {
	case KindExternal:
		s.generator = identifier.NewExternal()
	case random.KindInsecure:
		var options []random.InsecureOption
		if seed := s.config.Source.Seed; seed != nil {
			options = append(options, random.WithSeed(*seed))
		}
		// the engine is shared by concurrent callers (HTTP handlers)
		s.generator = identifier.NewBuilder(random.Locked(random.NewInsecure(options...)))
	default:
		source, err := random.NewSecure()
		if err != nil {
			return err
		}
		s.generator = identifier.NewBuilder(source)
	}
	return nil
}

// New creates a service. Without options it assembles UUIDs from crypto/rand.
func New(options ...Option) (*Service, error) {
	ret := &Service{}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}

// NewFromConfig creates a service from config; options are applied after it.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	return New(append([]Option{WithConfig(config)}, options...)...)
}
