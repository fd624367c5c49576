package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DigestRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "digest_runs_total",
		Help: "Digest invocations by outcome",
	}, []string{"outcome"})

	IdentitiesScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roster_identities_scanned_total",
		Help: "Roster members whose calendars were inspected",
	})

	AbsenceEvents = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "absence_events_total",
		Help: "Qualifying leave events included in digests",
	})

	CalendarErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "calendar_errors_total",
		Help: "Per-member calendar fetches that failed and were skipped",
	})

	PostErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "digest_post_errors_total",
		Help: "Failed digest deliveries",
	})

	DigestBuildSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "digest_build_seconds",
		Help:    "Time spent building a digest",
		Buckets: prometheus.DefBuckets,
	})
)

// MustRegister registers all announcer metrics.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		DigestRuns,
		IdentitiesScanned,
		AbsenceEvents,
		CalendarErrors,
		PostErrors,
		DigestBuildSeconds,
	)
}
