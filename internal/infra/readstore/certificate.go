package readstore

import (
	"context"

	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
	"course-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

type CertificateReadQueries interface {
	GetCertificateByUserCourse(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCertificateByUserCourseParams) (sqlc.GetCertificateByUserCourseRow, error)
	GetCertificateValidation(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetCertificateValidationRow, error)
	ListCertificatesByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListCertificatesByUserRow, error)
}

type CertificateReadStore struct {
	queries CertificateReadQueries
	db      sqlc.DBTX
}

func NewCertificateReadStore(queries CertificateReadQueries, db sqlc.DBTX) *CertificateReadStore {
	return &CertificateReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *CertificateReadStore) FindByUserCourse(ctx context.Context, userID, courseID uuid.UUID) (*certificate.Certificate, error) {
	params := sqlc.GetCertificateByUserCourseParams{UserID: userID, CourseID: courseID}
	row, err := s.queries.GetCertificateByUserCourse(ctx, s.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get certificate", err)
	}
	return certificate.Reconstruct(row.UserID, row.CourseID, row.Code, pgconv.TimeFromPgtype(row.IssuedAt)), nil
}

func (s *CertificateReadStore) FindValidation(ctx context.Context, code string) (*queries.CertificateValidation, error) {
	row, err := s.queries.GetCertificateValidation(ctx, s.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("certificate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to validate certificate", err)
	}
	issuedAt := pgconv.TimeFromPgtype(row.IssuedAt)
	return &queries.CertificateValidation{
		Valid:       true,
		Code:        row.Code,
		StudentName: row.StudentName,
		CourseTitle: row.CourseTitle,
		IssuedAt:    &issuedAt,
	}, nil
}

func (s *CertificateReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.CertificateListItem, error) {
	rows, err := s.queries.ListCertificatesByUser(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list certificates by user", err)
	}
	items := make([]*queries.CertificateListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.CertificateListItem{
			Code:        row.Code,
			CourseID:    row.CourseID,
			CourseTitle: row.CourseTitle,
			IssuedAt:    pgconv.TimeFromPgtype(row.IssuedAt),
		})
	}
	return items, nil
}
