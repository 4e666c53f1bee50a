package prometheus

import (
	"fmt"
	"time"
)

// AppMetrics holds all application metrics for the molecular editor service.
type AppMetrics struct {
	// HTTP layer
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec
	HTTPRequestSize     HistogramVec
	HTTPResponseSize    HistogramVec
	HTTPActiveRequests  GaugeVec

	// Editor layer
	EditOperationsTotal   CounterVec
	EditOperationDuration HistogramVec
	ActiveSessions        GaugeVec
	SessionsOpenedTotal   CounterVec
	SessionsExpiredTotal  CounterVec
	GraphAtomCount        HistogramVec
	GraphBondCount        HistogramVec

	// Serialization layer
	SerializationsTotal   CounterVec
	SerializationDuration HistogramVec
	SMILESLength          HistogramVec

	// Molecule persistence layer
	MoleculesSavedTotal   CounterVec
	MoleculesDeletedTotal CounterVec
	MoleculeExportsTotal  CounterVec

	// Infrastructure layer
	DBConnectionPoolSize   GaugeVec
	DBConnectionPoolActive GaugeVec
	DBQueryDuration        HistogramVec
	CacheHitsTotal         CounterVec
	CacheMissesTotal       CounterVec
	EventPublishDuration   HistogramVec

	// System health
	ServiceUptime     GaugeVec
	HealthCheckStatus GaugeVec
	ErrorsTotal       CounterVec
}

// Default buckets
var (
	DefaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultEditDurationBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1}
	DefaultSizeBuckets         = []float64{100, 1000, 10000, 100000, 1000000, 10000000}
	DefaultDBDurationBuckets   = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
	DefaultGraphSizeBuckets    = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}
)

// NewAppMetrics registers all metrics and returns the AppMetrics struct.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")
	m.HTTPRequestSize = collector.RegisterHistogram("http_request_size_bytes", "HTTP request size", DefaultSizeBuckets, "method", "path")
	m.HTTPResponseSize = collector.RegisterHistogram("http_response_size_bytes", "HTTP response size", DefaultSizeBuckets, "method", "path")
	m.HTTPActiveRequests = collector.RegisterGauge("http_active_requests", "Active HTTP requests", "method", "path")

	// Editor
	m.EditOperationsTotal = collector.RegisterCounter("edit_operations_total", "Graph edit operations", "operation", "status")
	m.EditOperationDuration = collector.RegisterHistogram("edit_operation_duration_seconds", "Graph edit operation duration", DefaultEditDurationBuckets, "operation")
	m.ActiveSessions = collector.RegisterGauge("active_sessions", "Open editing sessions")
	m.SessionsOpenedTotal = collector.RegisterCounter("sessions_opened_total", "Editing sessions opened")
	m.SessionsExpiredTotal = collector.RegisterCounter("sessions_expired_total", "Editing sessions reaped after idle TTL")
	m.GraphAtomCount = collector.RegisterHistogram("graph_atom_count", "Atom count of edited graphs", DefaultGraphSizeBuckets)
	m.GraphBondCount = collector.RegisterHistogram("graph_bond_count", "Bond count of edited graphs", DefaultGraphSizeBuckets)

	// Serialization
	m.SerializationsTotal = collector.RegisterCounter("serializations_total", "SMILES serializations", "status")
	m.SerializationDuration = collector.RegisterHistogram("serialization_duration_seconds", "SMILES serialization duration", DefaultEditDurationBuckets)
	m.SMILESLength = collector.RegisterHistogram("smiles_length_chars", "Length of produced SMILES strings", DefaultGraphSizeBuckets)

	// Molecule persistence
	m.MoleculesSavedTotal = collector.RegisterCounter("molecules_saved_total", "Molecule documents saved", "status")
	m.MoleculesDeletedTotal = collector.RegisterCounter("molecules_deleted_total", "Molecule documents deleted")
	m.MoleculeExportsTotal = collector.RegisterCounter("molecule_exports_total", "Molecule exports to object storage", "status")

	// Infrastructure
	m.DBConnectionPoolSize = collector.RegisterGauge("db_pool_size", "Database connection pool size", "db")
	m.DBConnectionPoolActive = collector.RegisterGauge("db_pool_active", "Database active connections", "db")
	m.DBQueryDuration = collector.RegisterHistogram("db_query_duration_seconds", "Database query duration", DefaultDBDurationBuckets, "db", "operation")
	m.CacheHitsTotal = collector.RegisterCounter("cache_hits_total", "Cache hits", "cache")
	m.CacheMissesTotal = collector.RegisterCounter("cache_misses_total", "Cache misses", "cache")
	m.EventPublishDuration = collector.RegisterHistogram("event_publish_duration_seconds", "Domain event publish duration", DefaultHTTPDurationBuckets, "topic")

	// System health
	m.ServiceUptime = collector.RegisterGauge("service_uptime_seconds", "Service uptime", "service")
	m.HealthCheckStatus = collector.RegisterGauge("health_check_status", "Health check status (1=up, 0=down)", "component")
	m.ErrorsTotal = collector.RegisterCounter("errors_total", "Total errors", "component", "error_type", "severity")

	return m
}

// RegisterAppMetrics is an alias for NewAppMetrics.
func RegisterAppMetrics(collector MetricsCollector) *AppMetrics {
	return NewAppMetrics(collector)
}

// Helpers

func RecordHTTPRequest(metrics *AppMetrics, method, path string, statusCode int, duration time.Duration, reqSize, respSize int64) {
	status := fmt.Sprintf("%d", statusCode)
	metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	metrics.HTTPRequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	metrics.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
}

// RecordEditOperation tracks one graph mutation (add_atom, add_bond,
// remove_atom, merge_fragment, clear) and whether it succeeded.
func RecordEditOperation(metrics *AppMetrics, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	metrics.EditOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.EditOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSerialization tracks one SMILES serialization and the output length.
func RecordSerialization(metrics *AppMetrics, smiles string, duration time.Duration) {
	metrics.SerializationsTotal.WithLabelValues("success").Inc()
	metrics.SerializationDuration.WithLabelValues().Observe(duration.Seconds())
	metrics.SMILESLength.WithLabelValues().Observe(float64(len(smiles)))
}

// RecordGraphSize samples the graph dimensions after a mutation.
func RecordGraphSize(metrics *AppMetrics, atoms, bonds int) {
	metrics.GraphAtomCount.WithLabelValues().Observe(float64(atoms))
	metrics.GraphBondCount.WithLabelValues().Observe(float64(bonds))
}

func RecordDBQuery(metrics *AppMetrics, db, operation string, duration time.Duration, err error) {
	metrics.DBQueryDuration.WithLabelValues(db, operation).Observe(duration.Seconds())
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues(db, "query_error", "error").Inc()
	}
}

func RecordCacheAccess(metrics *AppMetrics, cache string, hit bool) {
	if hit {
		metrics.CacheHitsTotal.WithLabelValues(cache).Inc()
	} else {
		metrics.CacheMissesTotal.WithLabelValues(cache).Inc()
	}
}

func RecordError(metrics *AppMetrics, component, errorType, severity string) {
	metrics.ErrorsTotal.WithLabelValues(component, errorType, severity).Inc()
}

//Personal.AI order the ending
