package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/uuidgen"

// Init configures OpenTelemetry with the stdout exporter backed by either os.Stdout or the
// specified file. The function is safe to call multiple times – the first successful
// initialisation wins.
//
// The output file is only opened by the call that installs the provider, so
// later calls never truncate a file the live exporter writes to.
func Init(serviceName, serviceVersion, outputFile string) error {
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		var w io.Writer = os.Stdout
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return nil, err
			}
			w = f
		}
		return stdouttrace.New(stdouttrace.WithWriter(w))
	})
}

// InitWithExporter configures OpenTelemetry using the supplied SpanExporter (OTLP, Jaeger,
// in-memory for tests, ...). The first successful initialisation wins.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		return exporter, nil
	})
}

var (
	providerOnce sync.Once
	providerErr  error
)

// installProvider builds the exporter and registers it globally; newExporter
// runs at most once per process.
func installProvider(serviceName, serviceVersion string, newExporter func() (sdktrace.SpanExporter, error)) error {
	providerOnce.Do(func() {
		exporter, err := newExporter()
		if err != nil {
			providerErr = err
			return
		}
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
	})
	return providerErr
}

// Span wraps an OpenTelemetry span so that callers do not import the upstream package.
type Span struct {
	span trace.Span
}

// WithAttributes attaches all provided attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// SetStatus records an error status on the span, or OK when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return
	}
	s.span.SetStatus(codes.Ok, "")
}

// StartSpan starts an internal span named name.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan finalises the span and records status depending on the provided error.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
