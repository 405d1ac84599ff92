package observability

import (
	"testing"
	"time"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordFrame("demo-instance", "service", "send")
	RecordConnectionOutcome("demo-instance", "service", "established")
	RecordParse("demo-instance", "success")
	RecordSessionDuration("demo-instance", 12*time.Millisecond)
	RecordAdminRequest("demo-instance", "GET", "/healthz", 200)
}
