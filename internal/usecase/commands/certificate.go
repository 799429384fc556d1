package commands

import (
	"context"
	"time"

	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/config"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

// CertificateIssuer creates at most one certificate per (user, course).
// It runs inside the caller's transaction.
type CertificateIssuer struct {
	prefix string
	clock  clock.Clock
}

func NewCertificateIssuer(cfg config.Config, clock clock.Clock) *CertificateIssuer {
	return &CertificateIssuer{prefix: cfg.Certificate.CodePrefix, clock: clock}
}

type certificateEventData struct {
	UserID   uuid.UUID `json:"user_id"`
	CourseID uuid.UUID `json:"course_id"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

// IssueIfAbsent returns the existing certificate unchanged, or issues a new one.
// created is true only for the call whose insert won.
func (i *CertificateIssuer) IssueIfAbsent(ctx context.Context, tx shared.Tx, userID, courseID uuid.UUID) (*certificate.Certificate, bool, error) {
	existing, err := tx.Reads().CertificateFor(ctx, userID, courseID)
	if err == nil {
		return existing, false, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, false, err
	}

	now := i.clock.Now()
	cert := certificate.Issue(i.prefix, userID, courseID, now)
	inserted, err := tx.Certificates().InsertIfAbsent(ctx, tx.DB(), cert)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, false, ErrCertificateCodeConflict
		}
		return nil, false, err
	}
	if !inserted {
		winner, err := tx.Reads().CertificateFor(ctx, userID, courseID)
		if err != nil {
			return nil, false, err
		}
		return winner, false, nil
	}

	event := certificateEventData{
		UserID:   userID,
		CourseID: courseID,
		Code:     cert.Code().String(),
		IssuedAt: cert.IssuedAt(),
	}
	if err := enqueueEvent(ctx, tx, TopicCertificateIssued, event, now); err != nil {
		return nil, false, err
	}
	return cert, true, nil
}
