package todostate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	selectorEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "todostate_selector_evaluations_total",
		Help: "Total selector function calls, i.e., reads that missed the selector cache",
	})

	asyncReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "todostate_async_reads_total",
		Help: "Total asynchronous selector reads by result",
	}, []string{"result"}) // "hit", "miss" or "error"

	directoryRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "todostate_directory_requests_total",
		Help: "Total user directory requests by result",
	}, []string{"result"}) // "ok", "network", "status" or "malformed"
)
