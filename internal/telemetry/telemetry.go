// Package telemetry wires OpenTelemetry tracing to an OTLP/HTTP collector.
// Tracing is off unless an endpoint is configured, in which case the global
// tracer provider is replaced and spans from the services are exported.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/custodia-labs/slidedeck/internal/logger"
)

// EnvEndpoint overrides the configured collector endpoint.
const EnvEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "slidedeck"

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(ctx context.Context) error

// Endpoint returns the collector endpoint, preferring the environment.
func Endpoint(configured string) string {
	if env := strings.TrimSpace(os.Getenv(EnvEndpoint)); env != "" {
		return env
	}
	return strings.TrimSpace(configured)
}

// Setup installs a batching OTLP tracer provider when endpoint is not empty.
// Endpoints with a scheme ("http://host:4318") are used as URLs; bare
// "host:port" endpoints are reached over plain HTTP.
func Setup(ctx context.Context, endpoint, version string) (ShutdownFunc, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	var opts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", version),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	logger.Debug("exporting traces to %s", endpoint)

	return provider.Shutdown, nil
}
