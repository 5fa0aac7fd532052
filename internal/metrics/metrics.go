package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// MentionsScored tracks scored mentions by sentiment label
	MentionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_mentions_scored_total",
			Help: "Total mentions scored by sentiment label",
		},
		[]string{"sentiment"},
	)

	// RiskAlertsRaised tracks raised risk alerts by severity
	RiskAlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_risk_alerts_total",
			Help: "Total risk alerts raised by severity",
		},
		[]string{"severity"},
	)

	// BrandScore tracks the most recent brand score
	BrandScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_brand_score",
			Help: "Most recent 0-100 brand score",
		},
	)

	// PipelineRuns tracks completed pipeline runs by mode and status
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_pipeline_runs_total",
			Help: "Completed pipeline runs by mode and status",
		},
		[]string{"mode", "status"},
	)
)

// Collector metrics
var (
	// FetchErrors tracks failed search queries
	FetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_fetch_errors_total",
			Help: "Total failed search queries",
		},
	)

	// StateSaves tracks state persistence operations by document and status
	StateSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_state_saves_total",
			Help: "State persistence operations by document and status",
		},
		[]string{"document", "status"},
	)
)
