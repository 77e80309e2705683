package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/kbukum/itkit/logger"
)

// DefaultMeterName is the instrumentation scope used by itkit adapters.
const DefaultMeterName = "github.com/kbukum/itkit"

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

func newResource(serviceName, serviceVersion, environment string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("environment", environment),
		),
	)
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded by peekable adapters.
type Metrics struct {
	pullTotal     metric.Int64Counter
	fallbackTotal metric.Int64Counter
	restoreTotal  metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	pullTotal, err := meter.Int64Counter("peekable.pulls",
		metric.WithDescription("Pulls delegated to the wrapped producer, by end and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating peekable.pulls counter: %w", err)
	}

	fallbackTotal, err := meter.Int64Counter("peekable.fallbacks",
		metric.WithDescription("Consumes served from the opposite slot after one end was exhausted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating peekable.fallbacks counter: %w", err)
	}

	restoreTotal, err := meter.Int64Counter("peekable.restores",
		metric.WithDescription("Conditional consumes that pushed their outcome back into a slot"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating peekable.restores counter: %w", err)
	}

	return &Metrics{
		pullTotal:     pullTotal,
		fallbackTotal: fallbackTotal,
		restoreTotal:  restoreTotal,
	}, nil
}

// RecordPull records one pull from the producer at end ("front" or "back").
func (m *Metrics) RecordPull(ctx context.Context, end string, exhausted bool) {
	outcome := "item"
	if exhausted {
		outcome = "end"
	}
	m.pullTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("end", end),
		attribute.String("outcome", outcome),
	))
}

// RecordFallback records a consume at end that was served by the other slot.
func (m *Metrics) RecordFallback(ctx context.Context, end string) {
	m.fallbackTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("end", end),
	))
}

// RecordRestore records a rejected conditional consume.
func (m *Metrics) RecordRestore(ctx context.Context, operation string) {
	m.restoreTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
