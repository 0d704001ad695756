package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentStepTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lawwork_assessment_step_transitions_total",
			Help: "Total number of assessment step transitions",
		},
		[]string{"direction"}, // next / back
	)

	AssessmentsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lawwork_assessments_submitted_total",
			Help: "Total number of completed assessments",
		},
	)

	LeadRecordFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lawwork_lead_record_failures_total",
			Help: "Total number of submitted assessments that could not be written to the lead store",
		},
	)

	ResultsViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lawwork_results_views_total",
			Help: "Total number of rendered results pages",
		},
	)

	ProfileViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lawwork_profile_views_total",
			Help: "Total number of candidate profile views",
		},
		[]string{"candidate_id"},
	)

	Redirects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lawwork_redirects_total",
			Help: "Total number of redirects caused by missing assessment or unknown candidate",
		},
		[]string{"reason"},
	)

	SessionsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lawwork_sessions_swept_total",
			Help: "Total number of expired in-memory sessions removed",
		},
	)
)
