package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	FieldErrorCode = "error_code"
	FieldResult    = "result"

	ValueNoError = ""
	ValueMatched = "matched"
	ValueSkipped = "skipped"

	Namespace      = "access_log_stats"
	SubParser      = "parser"
	SubAggregation = "aggregator"
	SubReporter    = "reporter"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// Gatherer is a type alias for prometheus.Gatherer.
type Gatherer = prometheus.Gatherer

// DefaultGatherer is the registry every counter of this package is registered with.
var DefaultGatherer Gatherer = prometheus.DefaultGatherer

// NewCounterVec creates a new CounterVec with the given CounterOpts and label names.
// It is automatically registered with the default prometheus registry.
var NewCounterVec = promauto.NewCounterVec

// NewCounter creates a new Counter registered with the default prometheus registry.
var NewCounter = promauto.NewCounter

// WriteTextfile writes the gathered metrics in the text exposition format to path,
// ready to be picked up by the node exporter textfile collector.
// The write goes through a temporary file and a rename.
var WriteTextfile = func(path string, g Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
