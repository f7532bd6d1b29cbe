// Package observability wires flowless pipelines to an OpenTelemetry
// collector. Init installs global tracer and meter providers with OTLP HTTP
// exporters; compose picks them up through the otel globals.
package observability
