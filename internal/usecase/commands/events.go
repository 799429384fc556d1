package commands

import (
	"context"
	"encoding/json"
	"time"

	"course-marketplace/internal/usecase/shared"
)

const notificationKindEvent = "event"

const (
	TopicTransactionSubmitted = "transaction.submitted"
	TopicTransactionApproved  = "transaction.approved"
	TopicTransactionRejected  = "transaction.rejected"
	TopicCertificateIssued    = "certificate.issued"
	TopicPayoutRequested      = "payout.requested"
	TopicPayoutStatusChanged  = "payout.status_changed"
)

type eventEnvelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// enqueueEvent stores the event in the outbox inside the caller's transaction.
func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, data any, now time.Time) error {
	payload, err := json.Marshal(eventEnvelope{Type: topic, OccurredAt: now, Data: data})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEvent, topic, payload, now)
}
