package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetrics() *Metrics {
	return NewWithRegistry("test", prometheus.NewRegistry())
}

func TestRecordHTTPRequest(t *testing.T) {
	m := newTestMetrics()

	m.RecordHTTPRequest("GET", "/api/v1/courses", "200", 10*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/courses", "200", 20*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/v1/courses", "500", 5*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/courses", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/courses", "500")))
}

func TestRecordDBQuery(t *testing.T) {
	m := newTestMetrics()

	m.RecordDBQuery("SELECT", time.Millisecond, nil)
	m.RecordDBQuery("INSERT", time.Millisecond, errors.New("boom"))

	assert.Equal(t, float64(0), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("SELECT")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("INSERT")))
}

func TestSetDBStats(t *testing.T) {
	m := newTestMetrics()

	m.SetDBStats(sql.DBStats{OpenConnections: 7, InUse: 3, Idle: 4, WaitCount: 2})

	assert.Equal(t, float64(7), testutil.ToFloat64(m.DBOpenConns))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBInUseConns))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.DBIdleConns))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DBWaitCount))
}

func TestRecordCommitAndNotification(t *testing.T) {
	m := newTestMetrics()

	m.RecordCommit("yoga", "confirmed")
	m.RecordCommit("yoga", "capacity_exceeded")
	m.RecordCommit("yoga", "confirmed")
	m.RecordNotification("queued")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingCommitsTotal.WithLabelValues("yoga", "confirmed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingCommitsTotal.WithLabelValues("yoga", "capacity_exceeded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("queued")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", "200", time.Second)
		m.RecordDBQuery("SELECT", time.Second, nil)
		m.SetDBStats(sql.DBStats{})
		m.RecordCommit("gym", "confirmed")
		m.RecordNotification("failed")
	})
}
