package queries

import (
	"context"
	"time"

	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/infra"

	"github.com/google/uuid"
)

// CertificateValidation is the public answer for a verification code.
// Unknown codes are valid=false, never an error.
type CertificateValidation struct {
	Valid       bool       `json:"valid"`
	Code        string     `json:"code"`
	StudentName string     `json:"student_name,omitempty"`
	CourseTitle string     `json:"course_title,omitempty"`
	IssuedAt    *time.Time `json:"issued_at,omitempty"`
}

type CertificateListItem struct {
	Code        string    `json:"code"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	IssuedAt    time.Time `json:"issued_at"`
}

type CertificateReadStore interface {
	FindValidation(ctx context.Context, code string) (*CertificateValidation, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*CertificateListItem, error)
}

type CertificateQueries interface {
	Validate(ctx context.Context, code string) (*CertificateValidation, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*CertificateListItem, error)
}

type certificateQueriesImpl struct {
	repo CertificateReadStore
}

func NewCertificateQueries(repo CertificateReadStore) CertificateQueries {
	return &certificateQueriesImpl{repo: repo}
}

func (q *certificateQueriesImpl) Validate(ctx context.Context, code string) (*CertificateValidation, error) {
	parsed, err := certificate.ParseCode(code)
	if err != nil {
		return &CertificateValidation{Valid: false, Code: code}, nil
	}
	v, err := q.repo.FindValidation(ctx, parsed.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CertificateValidation{Valid: false, Code: parsed.String()}, nil
		}
		return nil, err
	}
	return v, nil
}

func (q *certificateQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*CertificateListItem, error) {
	return q.repo.FindByUser(ctx, userID)
}
