// Package metrics is the operational outcome sink for the background finish
// pipeline. The submit path never reports recognition results to its caller,
// so these counters (plus the log) are how operators see failures.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FinishesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regatta_finishes_recorded_total",
		Help: "Positions created by the background finish pipeline.",
	})

	DuplicateFinishes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regatta_duplicate_finishes_total",
		Help: "Finish submissions dropped because the (race, competitor) pair was already recorded.",
	})

	AmbiguousRecognitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regatta_ambiguous_recognitions_total",
		Help: "Finish submissions dropped because no sail number matched above the similarity cutoff.",
	})

	MalformedImages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regatta_malformed_images_total",
		Help: "Finish submissions whose image bytes could not be decoded.",
	})

	PipelineErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regatta_pipeline_errors_total",
		Help: "Background finish jobs that failed for reasons other than the recognized taxonomy.",
	})

	QueueRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "regatta_queue_rejections_total",
		Help: "Finish submissions rejected because the dispatch queue was full.",
	})

	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "regatta_queue_depth",
		Help: "Finish jobs currently waiting for a worker.",
	})

	RecognitionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "regatta_recognition_duration_seconds",
		Help:    "Wall time of one recognition-and-ranking cycle.",
		Buckets: prometheus.DefBuckets,
	})
)
