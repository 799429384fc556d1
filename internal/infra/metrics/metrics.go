package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TransactionsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_submitted_total",
			Help: "Number of manual payment submissions",
		},
	)

	TransactionsDecided = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_decided_total",
			Help: "Number of admin decisions by resulting status",
		},
		[]string{"status"},
	)

	CouponRedemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coupon_redemptions_total",
			Help: "Coupon redemption attempts by result",
		},
		[]string{"result"},
	)

	CertificatesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "certificates_issued_total",
			Help: "Number of certificates issued",
		},
	)

	PayoutsRequested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payouts_requested_total",
			Help: "Number of payout requests accepted",
		},
	)

	OutboxPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outbox_events_total",
			Help: "Outbox deliveries by outcome",
		},
		[]string{"outcome"},
	)

	OutboxPublishTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "outbox_publish_duration_seconds",
			Help: "Time taken to publish one outbox event",
		},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		TransactionsSubmitted,
		TransactionsDecided,
		CouponRedemptions,
		CertificatesIssued,
		PayoutsRequested,
		OutboxPublished,
		OutboxPublishTime,
	)
}

// Recorder feeds the business counters from the command layer.
type Recorder struct{}

func NewRecorder() *Recorder { return &Recorder{} }

func (Recorder) TransactionSubmitted() { TransactionsSubmitted.Inc() }

func (Recorder) TransactionDecided(status string) { TransactionsDecided.WithLabelValues(status).Inc() }

func (Recorder) CouponRedemption(result string) { CouponRedemptions.WithLabelValues(result).Inc() }

func (Recorder) CertificateIssued() { CertificatesIssued.Inc() }

func (Recorder) PayoutRequested() { PayoutsRequested.Inc() }
