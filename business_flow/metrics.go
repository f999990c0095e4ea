package businessflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Flow outcomes partitioned by operation and envelope code
var flowOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "copydesk_flow_outcomes_total",
		Help: "Total number of business flow invocations by outcome",
	},
	[]string{"operation", "code"},
)

func observeOutcome(operation string, err error) {
	code := "OK"
	if err != nil {
		code = ErrorCode(err)
	}
	flowOutcomesTotal.WithLabelValues(operation, code).Inc()
}
