package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resumeforge/internal/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Metrics holds all custom metrics for resumeforge
type Metrics struct {
	// AI operation metrics
	AIProcessingTime metric.Float64Histogram
	AIRequestCount   metric.Int64Counter
	AIErrorCount     metric.Int64Counter
	AITokenUsage     metric.Int64Histogram

	// Business metrics
	ResumesRendered   metric.Int64Counter
	TextsEnhanced     metric.Int64Counter
	ResumesScored     metric.Int64Counter
	KeywordsExtracted metric.Int64Counter
	SuggestionsServed metric.Int64Counter
	ResumesExported   metric.Int64Counter

	// Infrastructure metrics
	CertReloadCount metric.Int64Counter
	RateLimitHits   metric.Int64Counter
}

// Manager manages OpenTelemetry setup
type Manager struct {
	cfg              *config.Config
	version          string
	tracerProvider   *trace.TracerProvider
	meterProvider    *sdkmetric.MeterProvider
	metrics          *Metrics
	shutdownFuncs    []func(context.Context) error
	prometheusServer *http.ServeMux
}

// NewManager wires tracing and metrics from the observability section of the
// configuration. A disabled section yields a manager whose tracers are no-ops
// and whose metrics are nil-safe.
func NewManager(cfg *config.Config, version string) (*Manager, error) {
	m := &Manager{cfg: cfg, version: version}
	if cfg == nil || !cfg.Observability.Enabled {
		return m, nil
	}

	if err := m.initTracing(); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if err := m.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}
	return m, nil
}

func (m *Manager) enabled() bool {
	return m.cfg != nil && m.cfg.Observability.Enabled
}

func (m *Manager) serviceVersion() string {
	if m.cfg.Observability.ServiceVersion != "" {
		return m.cfg.Observability.ServiceVersion
	}
	return m.version
}

func (m *Manager) newResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(m.cfg.Observability.ServiceName),
			semconv.ServiceVersion(m.serviceVersion()),
			attribute.String("service.instance.id", m.cfg.Observability.ServiceInstance),
		),
	)
}

// initTracing sets up OpenTelemetry tracing
func (m *Manager) initTracing() error {
	var exporter trace.SpanExporter
	var err error

	switch {
	case m.cfg.Observability.ConsoleOutput:
		// Console exporter for development
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	case m.cfg.Observability.OTLP.Enabled:
		exporter, err = m.createOTLPTraceExporter()
	default:
		exporter = &noOpSpanExporter{}
	}
	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := m.newResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(m.cfg.Observability.Tracing.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	m.tracerProvider = tp
	m.shutdownFuncs = append(m.shutdownFuncs, tp.Shutdown)
	return nil
}

// initMetrics sets up OpenTelemetry metrics
func (m *Manager) initMetrics() error {
	readers, err := m.setupMetricReaders()
	if err != nil {
		return err
	}

	res, err := m.newResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}

	mp := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(mp)
	m.meterProvider = mp
	m.shutdownFuncs = append(m.shutdownFuncs, mp.Shutdown)

	return m.initCustomMetrics()
}

func (m *Manager) setupMetricReaders() ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader

	if m.cfg.Observability.ConsoleOutput {
		exporter, err := stdoutmetric.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create console metric exporter: %w", err)
		}
		readers = append(readers, sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(m.metricsInterval())))
	}

	if m.cfg.Observability.OTLP.Enabled {
		reader, err := m.createOTLPMetricsReader()
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics reader: %w", err)
		}
		readers = append(readers, reader)
	}

	if m.cfg.Observability.Prometheus.Enabled {
		reader, mux, err := SetupPrometheusExporter(m.cfg.Observability.Prometheus)
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		if reader != nil {
			readers = append(readers, reader)
			m.prometheusServer = mux
			if err := StartPrometheusServer(mux, m.cfg.Observability.Prometheus.Port); err != nil {
				return nil, fmt.Errorf("failed to start Prometheus server: %w", err)
			}
		}
	}

	// Manual reader as fallback so instruments always have a pipeline
	if len(readers) == 0 {
		readers = append(readers, sdkmetric.NewManualReader())
	}
	return readers, nil
}

func (m *Manager) metricsInterval() time.Duration {
	if interval := m.cfg.Observability.Metrics.CollectionInterval; interval > 0 {
		return interval
	}
	return 15 * time.Second
}

// initCustomMetrics creates all custom metrics for resumeforge
func (m *Manager) initCustomMetrics() error {
	meter := m.meterProvider.Meter(m.cfg.Observability.ServiceName)
	m.metrics = &Metrics{}

	var err error

	m.metrics.AIProcessingTime, err = meter.Float64Histogram(
		"resumeforge_ai_processing_duration_seconds",
		metric.WithDescription("Time spent processing AI requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create AI processing time metric: %w", err)
	}

	m.metrics.AIRequestCount, err = meter.Int64Counter(
		"resumeforge_ai_requests_total",
		metric.WithDescription("Total number of AI requests"),
	)
	if err != nil {
		return fmt.Errorf("failed to create AI request count metric: %w", err)
	}

	m.metrics.AIErrorCount, err = meter.Int64Counter(
		"resumeforge_ai_errors_total",
		metric.WithDescription("Total number of AI request errors"),
	)
	if err != nil {
		return fmt.Errorf("failed to create AI error count metric: %w", err)
	}

	m.metrics.AITokenUsage, err = meter.Int64Histogram(
		"resumeforge_ai_token_usage_total",
		metric.WithDescription("Token usage for AI requests (input, output, total)"),
		metric.WithUnit("tokens"),
	)
	if err != nil {
		return fmt.Errorf("failed to create AI token usage metric: %w", err)
	}

	counters := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&m.metrics.ResumesRendered, "resumeforge_resumes_rendered_total", "Total number of resumes rendered from templates"},
		{&m.metrics.TextsEnhanced, "resumeforge_texts_enhanced_total", "Total number of enhancement runs"},
		{&m.metrics.ResumesScored, "resumeforge_resumes_scored_total", "Total number of ATS score reports produced"},
		{&m.metrics.KeywordsExtracted, "resumeforge_keywords_extracted_total", "Total number of keyword extraction runs"},
		{&m.metrics.SuggestionsServed, "resumeforge_suggestions_served_total", "Total number of content suggestion runs"},
		{&m.metrics.ResumesExported, "resumeforge_resumes_exported_total", "Total number of resume exports"},
		{&m.metrics.CertReloadCount, "resumeforge_cert_reloads_total", "Total number of certificate reloads"},
		{&m.metrics.RateLimitHits, "resumeforge_rate_limit_hits_total", "Total number of rate limit hits"},
	}
	for _, c := range counters {
		*c.target, err = meter.Int64Counter(c.name, metric.WithDescription(c.description))
		if err != nil {
			return fmt.Errorf("failed to create metric %s: %w", c.name, err)
		}
	}

	return nil
}

// GetMetrics returns the metrics instance
func (m *Manager) GetMetrics() *Metrics {
	if m.metrics == nil {
		return &Metrics{} // Nil-safe when observability is disabled
	}
	return m.metrics
}

// HTTPMiddleware returns HTTP middleware with OpenTelemetry instrumentation
func (m *Manager) HTTPMiddleware() func(http.Handler) http.Handler {
	if !m.enabled() {
		return func(h http.Handler) http.Handler { return h }
	}
	return otelhttp.NewMiddleware(
		m.cfg.Observability.ServiceName,
		otelhttp.WithTracerProvider(m.tracerProvider),
		otelhttp.WithMeterProvider(m.meterProvider),
	)
}

// Tracer returns a tracer for the service
func (m *Manager) Tracer(name string) oteltrace.Tracer {
	if !m.enabled() {
		return noop.NewTracerProvider().Tracer(name)
	}
	return otel.Tracer(name)
}

// Shutdown gracefully shuts down all observability components
func (m *Manager) Shutdown(ctx context.Context) error {
	for _, shutdown := range m.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TokenUsage mirrors the token counts reported by the AI provider.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// TrackAIOperation instruments an AI operation with a span, duration, request
// and error counters, and token usage when the operation reports it.
func (mt *Metrics) TrackAIOperation(ctx context.Context, operation string, fn func(context.Context) (*TokenUsage, error)) error {
	if mt.AIProcessingTime == nil {
		_, err := fn(ctx)
		return err
	}

	tracer := otel.Tracer("resumeforge.ai")
	ctx, span := tracer.Start(ctx, "ai."+operation)
	defer span.End()

	start := time.Now()
	usage, err := fn(ctx)
	duration := time.Since(start).Seconds()

	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", err == nil),
	}

	mt.AIProcessingTime.Record(ctx, duration, metric.WithAttributes(attrs...))
	mt.AIRequestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	if err != nil {
		mt.AIErrorCount.Add(ctx, 1, metric.WithAttributes(attrs...))
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("error", true))
	}

	if usage != nil && mt.AITokenUsage != nil {
		for _, tt := range []struct {
			tokenType string
			value     int64
		}{
			{"input", usage.InputTokens},
			{"output", usage.OutputTokens},
			{"total", usage.TotalTokens},
		} {
			tokenAttrs := append(attrs, attribute.String("token_type", tt.tokenType))
			mt.AITokenUsage.Record(ctx, tt.value, metric.WithAttributes(tokenAttrs...))
		}
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", usage.InputTokens),
			attribute.Int64("ai.tokens.output", usage.OutputTokens),
			attribute.Int64("ai.tokens.total", usage.TotalTokens),
		)
	}

	span.SetAttributes(attrs...)
	return err
}

// RecordOperation bumps the counter for one business operation.
func (mt *Metrics) RecordOperation(ctx context.Context, counter metric.Int64Counter, success bool, attributes ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	attrs := append([]attribute.KeyValue{attribute.Bool("success", success)}, attributes...)
	counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

type noOpSpanExporter struct{}

func (n *noOpSpanExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	return nil
}

func (n *noOpSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

func (m *Manager) createOTLPTraceExporter() (trace.SpanExporter, error) {
	otlpConfig := m.cfg.Observability.OTLP

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(otlpConfig.Endpoint),
	}
	if otlpConfig.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(otlpConfig.Headers))
	}

	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}
	return exporter, nil
}

func (m *Manager) createOTLPMetricsReader() (sdkmetric.Reader, error) {
	otlpConfig := m.cfg.Observability.OTLP

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpointURL(otlpConfig.Endpoint),
	}
	if otlpConfig.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlpmetrichttp.WithHeaders(otlpConfig.Headers))
	}

	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}
	return sdkmetric.NewPeriodicReader(exporter,
		sdkmetric.WithInterval(m.metricsInterval())), nil
}
