// Package telemetry configures OpenTelemetry request tracing.
package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"dealzpark/config"
	"dealzpark/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
)

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"

	defaultServiceName  = "dealzpark"
	defaultOTLPEndpoint = "localhost:4317"
)

// Params defines the parameters required for the tracer provider
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New builds the process tracer provider and registers it globally.
// When tracing is disabled a no-op provider is returned.
func New(params Params) (trace.TracerProvider, error) {
	cfg := params.Config.Telemetry
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Tracing disabled")

		return noop.NewTracerProvider(), nil
	}

	exporter, err := newExporter(context.Background(), cfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	tp := newTracerProvider(exporter, serviceName(params.Config))

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(tp.Shutdown(shutdownCtx), "failed to shut down tracer provider")
		},
	})

	params.Logger.Info("Tracing enabled",
		slog.String("exporter", cfg.Exporter),
		slog.String("endpoint", cfg.Endpoint),
	)

	return tp, nil
}

func newExporter(ctx context.Context, cfg *config.TelemetryConfig, w io.Writer) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(cfg.Exporter) {
	case ExporterStdout:
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create stdout trace exporter")
		}

		return exporter, nil
	case ExporterOTLP:
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = defaultOTLPEndpoint
		}

		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create OTLP trace exporter")
		}

		return exporter, nil
	default:
		return nil, errors.Errorf("unknown trace exporter: %s", cfg.Exporter)
	}
}

func newTracerProvider(exporter sdktrace.SpanExporter, name string) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", name),
		)),
	)
}

func serviceName(cfg *config.Config) string {
	if cfg.Env.ServiceName != "" {
		return cfg.Env.ServiceName
	}

	return defaultServiceName
}
