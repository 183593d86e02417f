// Package tracing wires OpenTelemetry into uuidgen so that every generation
// request can be observed. Spans are no-ops until Init or InitWithExporter
// installs a provider.
package tracing
