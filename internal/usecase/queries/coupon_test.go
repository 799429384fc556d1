//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/queries"
	"course-marketplace/tests/common/builder"
	queriesmock "course-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponValidate(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	buyer := uuid.New()

	tests := []struct {
		name     string
		coupon   *coupon.Coupon
		findErr  error
		wantKind coupon.RejectionKind
	}{
		{
			name:   "valid",
			coupon: builder.NewCouponBuilder().WithPercentage(15).BuildDomain(),
		},
		{
			name:     "unknown code",
			findErr:  infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound),
			wantKind: coupon.KindNotFound,
		},
		{
			name:     "expired",
			coupon:   builder.NewCouponBuilder().WithValidUntil(now.Add(-time.Second)).BuildDomain(),
			wantKind: coupon.KindExpired,
		},
		{
			name:     "exhausted",
			coupon:   builder.NewCouponBuilder().WithMaxUses(1).WithUsedBy(uuid.New()).BuildDomain(),
			wantKind: coupon.KindExhausted,
		},
		{
			name:     "already used by this buyer",
			coupon:   builder.NewCouponBuilder().WithUsedBy(buyer).BuildDomain(),
			wantKind: coupon.KindUserExhausted,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockCouponReadStore(ctrl)
			store.EXPECT().FindByCode(gomock.Any(), " insta10 ").Return(tt.coupon, tt.findErr)

			q := queries.NewCouponQueries(store, clock.NewMockClock(now))
			got, err := q.Validate(context.Background(), " insta10 ", buyer)

			if tt.wantKind != "" {
				kind, ok := coupon.KindOf(err)
				require.True(t, ok, "got %v", err)
				assert.Equal(t, tt.wantKind, kind)
				assert.True(t, errs.Is(err, errs.ErrInvalidCoupon))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Valid)
			assert.Equal(t, "INSTA10", got.Code)
			assert.Equal(t, 15, got.DiscountPercentage)
		})
	}
}
