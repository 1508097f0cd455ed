package metrics

// AppMetrics holds every metric the service emits, grouped by layer.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPActiveRequests  GaugeVec

	// Synthesis engine
	SynthesisTotal    CounterVec
	SynthesisDuration HistogramVec
	DetectionTotal    CounterVec
	PeaksExtracted    HistogramVec
	SamplesRendered   HistogramVec

	// Cache layer
	CacheHitsTotal   CounterVec
	CacheMissesTotal CounterVec
	CacheErrorsTotal CounterVec

	// System health
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

var (
	defaultHTTPDurationBuckets  = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	defaultSynthDurationBuckets = []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
	defaultPeakCountBuckets     = []float64{0, 1, 2, 4, 8, 16, 32}
	defaultSampleCountBuckets   = []float64{0, 64, 256, 601, 1024, 1801, 4096}
)

// NewAppMetrics registers every application metric on the collector.
func NewAppMetrics(c Collector) *AppMetrics {
	return &AppMetrics{
		HTTPRequestsTotal:   c.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status"),
		HTTPRequestDuration: c.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", defaultHTTPDurationBuckets, "method", "path"),
		HTTPActiveRequests:  c.RegisterGauge("http_active_requests", "In-flight HTTP requests", "method"),

		SynthesisTotal:    c.RegisterCounter("synthesis_total", "Spectrum synthesis calls", "modality", "status"),
		SynthesisDuration: c.RegisterHistogram("synthesis_duration_seconds", "Spectrum synthesis duration", defaultSynthDurationBuckets, "modality"),
		DetectionTotal:    c.RegisterCounter("detection_total", "Feature detection calls", "status"),
		PeaksExtracted:    c.RegisterHistogram("peaks_extracted", "Extracted peak count per synthesis", defaultPeakCountBuckets, "modality"),
		SamplesRendered:   c.RegisterHistogram("samples_rendered", "Curve sample count per synthesis", defaultSampleCountBuckets, "modality"),

		CacheHitsTotal:   c.RegisterCounter("cache_hits_total", "Spectra cache hits", "modality"),
		CacheMissesTotal: c.RegisterCounter("cache_misses_total", "Spectra cache misses", "modality"),
		CacheErrorsTotal: c.RegisterCounter("cache_errors_total", "Spectra cache errors", "operation"),

		HealthCheckStatus: c.RegisterGauge("health_check_status", "Health check status (1 healthy)", "check"),
		ErrorsTotal:       c.RegisterCounter("errors_total", "Errors by code", "code"),
	}
}

// NewNopAppMetrics returns metrics that record nothing, for tests and for
// configurations with metrics disabled.
func NewNopAppMetrics() *AppMetrics {
	return &AppMetrics{
		HTTPRequestsTotal:   noopCounterVec{},
		HTTPRequestDuration: noopHistogramVec{},
		HTTPActiveRequests:  noopGaugeVec{},
		SynthesisTotal:      noopCounterVec{},
		SynthesisDuration:   noopHistogramVec{},
		DetectionTotal:      noopCounterVec{},
		PeaksExtracted:      noopHistogramVec{},
		SamplesRendered:     noopHistogramVec{},
		CacheHitsTotal:      noopCounterVec{},
		CacheMissesTotal:    noopCounterVec{},
		CacheErrorsTotal:    noopCounterVec{},
		HealthCheckStatus:   noopGaugeVec{},
		ErrorsTotal:         noopCounterVec{},
	}
}
