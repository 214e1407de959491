// Package metrics exposes Prometheus counters for core operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registrations counts registration attempts by outcome.
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kgbdns_registrations_total",
		Help: "Total number of registration attempts",
	}, []string{"result"})

	// Logins counts login attempts by outcome.
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kgbdns_logins_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	// DomainOps counts domain mutations by operation and outcome.
	DomainOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kgbdns_domain_operations_total",
		Help: "Total number of domain create/update/remove operations",
	}, []string{"op", "result"})

	// UpstreamFailures counts failed calls to the DNS provider.
	UpstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kgbdns_upstream_failures_total",
		Help: "Total number of failed DNS-provider calls",
	})
)

// Result label values.
const (
	ResultOK   = "ok"
	ResultFail = "fail"
)
