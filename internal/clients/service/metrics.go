package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	credentialRepairsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credential_repairs_total",
			Help: "Credential generations triggered by a missing key mapping, by outcome",
		},
		[]string{"outcome"},
	)

	bestEffortFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "best_effort_failures_total",
			Help: "Failures absorbed by best-effort steps, by step",
		},
		[]string{"step"},
	)
)
