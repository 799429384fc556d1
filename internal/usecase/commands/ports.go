package commands

// MetricsRecorder receives business counters after a command commits.
type MetricsRecorder interface {
	TransactionSubmitted()
	TransactionDecided(status string)
	CouponRedemption(result string)
	CertificateIssued()
	PayoutRequested()
}

type NopMetrics struct{}

func (NopMetrics) TransactionSubmitted()     {}
func (NopMetrics) TransactionDecided(string) {}
func (NopMetrics) CouponRedemption(string)   {}
func (NopMetrics) CertificateIssued()        {}
func (NopMetrics) PayoutRequested()          {}
