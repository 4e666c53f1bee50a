package prometheus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppMetrics(t *testing.T) (*AppMetrics, MetricsCollector) {
	t.Helper()
	c := newTestCollector(t)
	m := NewAppMetrics(c)
	return m, c
}

func getMetricOutput(t *testing.T, collector MetricsCollector) string {
	t.Helper()
	return scrapeMetrics(t, collector)
}

func TestNewAppMetrics_AllMetricsRegistered(t *testing.T) {
	m, _ := newTestAppMetrics(t)
	require.NotNil(t, m)

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.EditOperationsTotal)
	assert.NotNil(t, m.EditOperationDuration)
	assert.NotNil(t, m.ActiveSessions)
	assert.NotNil(t, m.SerializationsTotal)
	assert.NotNil(t, m.SMILESLength)
	assert.NotNil(t, m.MoleculesSavedTotal)
	assert.NotNil(t, m.MoleculeExportsTotal)
	assert.NotNil(t, m.ErrorsTotal)
}

func TestRecordHTTPRequest_AllMetricsUpdated(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordHTTPRequest(m, "GET", "/api/v1/molecules", 200, 100*time.Millisecond, 1024, 2048)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_http_requests_total{method="GET",path="/api/v1/molecules",status_code="200"} 1`)
	assert.Contains(t, output, `test_unit_http_request_size_bytes_sum{method="GET",path="/api/v1/molecules"} 1024`)
	assert.Contains(t, output, `test_unit_http_response_size_bytes_sum{method="GET",path="/api/v1/molecules"} 2048`)
	assert.Contains(t, output, `test_unit_http_request_duration_seconds_count{method="GET",path="/api/v1/molecules"} 1`)
}

func TestRecordEditOperation_Success(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordEditOperation(m, "add_atom", nil, time.Millisecond)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_edit_operations_total{operation="add_atom",status="success"} 1`)
	assert.Contains(t, output, `test_unit_edit_operation_duration_seconds_count{operation="add_atom"} 1`)
}

func TestRecordEditOperation_Failure(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordEditOperation(m, "add_bond", errors.New("self bond"), time.Millisecond)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_edit_operations_total{operation="add_bond",status="failure"} 1`)
}

func TestRecordSerialization(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordSerialization(m, "CC(O)(N)", time.Microsecond)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_serializations_total{status="success"} 1`)
	assert.Contains(t, output, `test_unit_smiles_length_chars_sum 8`)
}

func TestRecordGraphSize(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordGraphSize(m, 12, 11)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_graph_atom_count_sum 12`)
	assert.Contains(t, output, `test_unit_graph_bond_count_sum 11`)
}

func TestRecordDBQuery_Success(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordDBQuery(m, "postgres", "select", 10*time.Millisecond, nil)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_db_query_duration_seconds_count{db="postgres",operation="select"} 1`)
}

func TestRecordDBQuery_Error(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordDBQuery(m, "postgres", "insert", 5*time.Millisecond, errors.New("db error"))

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_db_query_duration_seconds_count{db="postgres",operation="insert"} 1`)
	assert.Contains(t, output, `test_unit_errors_total{component="postgres",error_type="query_error",severity="error"} 1`)
}

func TestRecordCacheAccess_Hit(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordCacheAccess(m, "redis", true)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_cache_hits_total{cache="redis"} 1`)
}

func TestRecordCacheAccess_Miss(t *testing.T) {
	m, c := newTestAppMetrics(t)

	RecordCacheAccess(m, "local", false)

	output := getMetricOutput(t, c)
	assert.Contains(t, output, `test_unit_cache_misses_total{cache="local"} 1`)
}

func TestDefaultBuckets(t *testing.T) {
	assert.NotNil(t, DefaultHTTPDurationBuckets)
	assert.NotNil(t, DefaultEditDurationBuckets)
	assert.NotNil(t, DefaultGraphSizeBuckets)
}

func TestConcurrentMetricRecording(t *testing.T) {
	m, _ := newTestAppMetrics(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				RecordEditOperation(m, "add_atom", nil, time.Microsecond)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

//Personal.AI order the ending
