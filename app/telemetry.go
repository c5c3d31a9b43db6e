package app

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const serviceName = "meridian-chain"

// TelemetryConfig holds the configuration for node telemetry.
type TelemetryConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	PrometheusEnabled bool
	SampleRate        float64
}

// Telemetry manages OpenTelemetry tracing and metrics for the node process.
type Telemetry struct {
	tracer       *trace.TracerProvider
	meter        metric.Meter
	config       TelemetryConfig
	shutdownFunc func(context.Context) error
}

// InitTelemetry initializes OpenTelemetry tracing and metrics. A disabled
// config returns an inert Telemetry whose Shutdown is a no-op.
func InitTelemetry(cfg TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{config: cfg}, nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(buildVersion()),
		),
	)
	if err != nil {
		return nil, err
	}

	tel := &Telemetry{config: cfg}

	if err := tel.initTracing(res); err != nil {
		return nil, err
	}

	if err := tel.initMetrics(res); err != nil {
		return nil, err
	}

	return tel, nil
}

func (t *Telemetry) initTracing(res *resource.Resource) error {
	if _, err := url.Parse(t.config.OTLPEndpoint); err != nil {
		return err
	}

	endpoint := strings.TrimPrefix(t.config.OTLPEndpoint, "http://")
	exp, err := otlptracehttp.New(context.Background(), otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		return err
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(
			trace.TraceIDRatioBased(t.config.SampleRate),
		)),
	)

	otel.SetTracerProvider(tp)
	t.tracer = tp
	t.shutdownFunc = tp.Shutdown

	return nil
}

func (t *Telemetry) initMetrics(res *resource.Resource) error {
	if !t.config.PrometheusEnabled {
		return nil
	}

	exporter, err := prometheus.New()
	if err != nil {
		return err
	}

	provider := metricsdk.NewMeterProvider(
		metricsdk.WithResource(res),
		metricsdk.WithReader(exporter),
	)

	otel.SetMeterProvider(provider)
	t.meter = provider.Meter(serviceName)

	return nil
}

// Shutdown gracefully shuts down telemetry.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.shutdownFunc != nil {
		return t.shutdownFunc(ctx)
	}
	return nil
}

func buildVersion() string {
	return "1.0.0"
}
