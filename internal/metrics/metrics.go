package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "partner_ledger"

// Ledger holds the Prometheus collectors of the partner ledger.
// A nil *Ledger is valid and records nothing.
type Ledger struct {
	distributions      *prometheus.CounterVec
	credits            *prometheus.CounterVec
	creditedAmount     *prometheus.CounterVec
	settlements        *prometheus.CounterVec
	perTokenValue      prometheus.Gauge
	poolRemainder      prometheus.Gauge
	settledCycle       prometheus.Gauge
	withdrawals        *prometheus.CounterVec
	invariantViolation *prometheus.CounterVec
	bridgeEvents       *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
}

var (
	ledgerOnce     sync.Once
	ledgerRegistry *Ledger
)

// Default returns the process-wide collectors, registering them on first use
func Default() *Ledger {
	ledgerOnce.Do(func() {
		ledgerRegistry = New(prometheus.DefaultRegisterer)
	})
	return ledgerRegistry
}

// New creates collectors registered on reg
func New(reg prometheus.Registerer) *Ledger {
	m := &Ledger{
		distributions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "commission",
			Name:      "distributions_total",
			Help:      "Commission distributions segmented by event kind and outcome.",
		}, []string{"kind", "outcome"}),
		credits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "credits_total",
			Help:      "Ledger credits written segmented by reason and account kind.",
		}, []string{"reason", "account"}),
		creditedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "credited_amount_total",
			Help:      "Sum of credited minor units segmented by reason and account kind.",
		}, []string{"reason", "account"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "settlements_total",
			Help:      "Bonus pool settlement attempts segmented by outcome.",
		}, []string{"outcome"}),
		perTokenValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "per_token_value",
			Help:      "Per-token dividend of the last settled cycle in minor units.",
		}),
		poolRemainder: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_remainder",
			Help:      "Undistributed remainder of the last settled cycle in minor units.",
		}),
		settledCycle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "last_settled_cycle",
			Help:      "Number of the last settled bonus pool cycle.",
		}),
		withdrawals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "withdrawal",
			Name:      "transitions_total",
			Help:      "Withdrawal request transitions segmented by target status.",
		}, []string{"status"}),
		invariantViolation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_invariant_violations_total",
			Help:      "Accounts whose cached balance disagreed with the sum of their ledger entries.",
		}, []string{"account"}),
		bridgeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bridge",
			Name:      "events_total",
			Help:      "Events consumed from JetStream segmented by subject and outcome.",
		}, []string{"subject", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests segmented by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.distributions,
		m.credits,
		m.creditedAmount,
		m.settlements,
		m.perTokenValue,
		m.poolRemainder,
		m.settledCycle,
		m.withdrawals,
		m.invariantViolation,
		m.bridgeEvents,
		m.httpRequests,
		m.httpLatency,
	)
	return m
}

// ObserveDistribution records one distribution outcome (applied, duplicate, rejected, failed)
func (m *Ledger) ObserveDistribution(kind, outcome string) {
	if m == nil {
		return
	}
	m.distributions.WithLabelValues(kind, outcome).Inc()
}

// ObserveCredit records a credit written to the ledger
func (m *Ledger) ObserveCredit(reason, account string, amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.credits.WithLabelValues(reason, account).Inc()
	m.creditedAmount.WithLabelValues(reason, account).Add(float64(amount))
}

// ObserveSettlement records a settlement attempt
func (m *Ledger) ObserveSettlement(outcome string) {
	if m == nil {
		return
	}
	m.settlements.WithLabelValues(outcome).Inc()
}

// SetSettledCycle exports the figures frozen by the last settlement
func (m *Ledger) SetSettledCycle(number, perTokenValue, remainder int64) {
	if m == nil {
		return
	}
	m.settledCycle.Set(float64(number))
	m.perTokenValue.Set(float64(perTokenValue))
	m.poolRemainder.Set(float64(remainder))
}

// ObserveWithdrawal records a withdrawal request reaching status
func (m *Ledger) ObserveWithdrawal(status string) {
	if m == nil {
		return
	}
	m.withdrawals.WithLabelValues(status).Inc()
}

// ObserveInvariantViolation records a drifted account
func (m *Ledger) ObserveInvariantViolation(account string) {
	if m == nil {
		return
	}
	m.invariantViolation.WithLabelValues(account).Inc()
}

// ObserveBridgeEvent records the outcome of one consumed message (started, duplicate, invalid, failed)
func (m *Ledger) ObserveBridgeEvent(subject, outcome string) {
	if m == nil {
		return
	}
	if subject == "" {
		subject = "unknown"
	}
	m.bridgeEvents.WithLabelValues(subject, outcome).Inc()
}

// ObserveHTTP records one handled request
func (m *Ledger) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}
