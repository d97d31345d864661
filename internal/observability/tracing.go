// Package observability wires OpenTelemetry tracing for the HTTP server.
package observability

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// TracingConfig selects where spans are exported
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Environment string
	// OTLPEndpoint is a host:port for OTLP/HTTP. Spans go to Writer when empty.
	OTLPEndpoint string
	// Writer receives spans when no OTLP endpoint is set. Defaults to stdout.
	Writer io.Writer
}

// ShutdownFunc flushes pending spans and stops the tracer provider
type ShutdownFunc func(context.Context) error

// InitTracing installs a global tracer provider. When tracing is disabled the
// returned shutdown is a no-op.
func InitTracing(ctx context.Context, cfg TracingConfig) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	exporter, err := buildExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.WithFields(log.Fields{
		"service":  cfg.ServiceName,
		"endpoint": cfg.OTLPEndpoint,
	}).Info("Tracing initialized")
	return tp.Shutdown, nil
}

func buildExporter(ctx context.Context, cfg TracingConfig) (sdktrace.SpanExporter, error) {
	if cfg.OTLPEndpoint != "" {
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	return stdouttrace.New(stdouttrace.WithWriter(w))
}
