package readstore

import (
	"context"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/infra/repository/converter"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

type CouponReadQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetCouponByCodeRow, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode normalizes the code before lookup.
func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row, err := s.queries.GetCouponByCode(ctx, s.db, coupon.NormalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return converter.CouponFromRow(row), nil
}
