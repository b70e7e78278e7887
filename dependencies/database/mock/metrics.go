package mock

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "docstore",
	Subsystem: "mock",
	Name:      "operations_total",
	Help:      "the collection operations served from memory",
}, []string{"database", "collection", "operation"})

var documentsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "docstore",
	Subsystem: "mock",
	Name:      "documents",
	Help:      "the documents held per collection",
}, []string{"database", "collection"})
