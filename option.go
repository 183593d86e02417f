package uuidgen

import (
	"github.com/viant/uuidgen/identifier"
	"github.com/viant/uuidgen/random"
	"github.com/viant/uuidgen/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Service.
type Option func(s *Service)

// WithConfig sets the configuration the service is built from.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithSource makes the service assemble UUIDs with the builder over source.
// kind is reported in spans and responses. The source is serialised with
// random.Locked since the service may be called from concurrent handlers.
func WithSource(kind string, source random.Source) Option {
	return func(s *Service) {
		s.kind = kind
		s.generator = identifier.NewBuilder(random.Locked(source))
	}
}

// WithGenerator sets a custom generator.
func WithGenerator(kind string, generator identifier.Generator) Option {
	return func(s *Service) {
		s.kind = kind
		s.generator = generator
	}
}

// WithTracing configures OpenTelemetry tracing with the stdout exporter. If outputFile is
// empty os.Stdout is used. The first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		s.tracingErr = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		s.tracingErr = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
