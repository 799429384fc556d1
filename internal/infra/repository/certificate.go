package repository

import (
	"context"

	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

type CertificateWriteQueries interface {
	InsertCertificateIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCertificateIfAbsentParams) (sqlc.InsertCertificateIfAbsentRow, error)
}

type CertificateRepository struct {
	queries CertificateWriteQueries
	db      sqlc.DBTX
}

func NewCertificateRepository(queries CertificateWriteQueries, db sqlc.DBTX) *CertificateRepository {
	return &CertificateRepository{
		queries: queries,
		db:      db,
	}
}

// InsertIfAbsent relies on the (user_id, course_id) constraint; a code collision
// still surfaces as KindDuplicateKey.
func (r *CertificateRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, c *certificate.Certificate) (bool, error) {
	params := sqlc.InsertCertificateIfAbsentParams{
		UserID:   c.UserID(),
		CourseID: c.CourseID(),
		Code:     c.Code().String(),
		IssuedAt: pgconv.TimeToPgtype(c.IssuedAt()),
	}

	_, err := r.queries.InsertCertificateIfAbsent(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert certificate", err)
	}
	return true, nil
}
