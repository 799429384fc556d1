//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"course-marketplace/internal/domain/coupon"
	reqdto "course-marketplace/internal/handler/dto/request"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/pkg/patch"
	"course-marketplace/internal/usecase/commands"
	"course-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponCreate(t *testing.T) {
	ctx := context.Background()
	admin := builder.NewUserBuilder().AsAdmin().BuildPrincipal()

	t.Run("stores a normalized coupon", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewCouponUseCase(store, clock.NewMockClock(testNow))

		req := builder.NewCouponBuilder().WithCode(" black50 ").WithPercentage(50).WithMaxUses(100).BuildCreateRequestDTO()
		cp, err := uc.Create(ctx, req, admin)
		require.NoError(t, err)

		assert.Equal(t, "BLACK50", cp.Code().String())
		assert.Equal(t, testNow, cp.CreatedAt())
		require.Contains(t, store.coupons, "BLACK50")
		assert.Equal(t, int32(100), *store.coupons["BLACK50"].MaxUses())
	})

	t.Run("duplicate code", func(t *testing.T) {
		store := newMemStore()
		store.addCoupon(builder.NewCouponBuilder().WithCode("INSTA10").BuildDomain())
		uc := commands.NewCouponUseCase(store, clock.NewMockClock(testNow))

		_, err := uc.Create(ctx, builder.NewCouponBuilder().WithCode("insta10").BuildCreateRequestDTO(), admin)
		assert.ErrorIs(t, err, commands.ErrCouponCodeTaken)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("invalid percentage", func(t *testing.T) {
		uc := commands.NewCouponUseCase(newMemStore(), clock.NewMockClock(testNow))
		_, err := uc.Create(ctx, builder.NewCouponBuilder().WithPercentage(0).BuildCreateRequestDTO(), admin)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("admins only", func(t *testing.T) {
		store := newMemStore()
		uc := commands.NewCouponUseCase(store, clock.NewMockClock(testNow))
		_, err := uc.Create(ctx, builder.NewCouponBuilder().BuildCreateRequestDTO(), builder.NewUserBuilder().AsProfessor().BuildPrincipal())
		assert.ErrorIs(t, err, commands.ErrAdminOnly)
		assert.Empty(t, store.coupons)
	})
}

func TestCouponUpdate(t *testing.T) {
	ctx := context.Background()
	admin := builder.NewUserBuilder().AsAdmin().BuildPrincipal()
	until := testNow.Add(30 * 24 * time.Hour)
	pct := 25
	five := int32(5)

	newStore := func() *memStore {
		store := newMemStore()
		store.addCoupon(builder.NewCouponBuilder().
			WithCode("INSTA10").
			WithValidUntil(until).
			WithMaxUses(10).
			WithUsedBy(uuid.New(), uuid.New()).
			BuildDomain())
		return store
	}

	t.Run("omitted fields keep their value", func(t *testing.T) {
		store := newStore()
		uc := commands.NewCouponUseCase(store, clock.NewMockClock(testNow))

		cp, err := uc.Update(ctx, "insta10", reqdto.UpdateCouponRequest{DiscountPercentage: &pct}, admin)
		require.NoError(t, err)

		assert.Equal(t, 25, cp.Percentage().Int())
		require.NotNil(t, cp.ValidUntil())
		assert.Equal(t, until, *cp.ValidUntil())
		assert.Equal(t, int32(10), *cp.MaxUses())
		assert.Equal(t, int32(2), cp.UsedCount())
	})

	t.Run("null clears a limit", func(t *testing.T) {
		store := newStore()
		uc := commands.NewCouponUseCase(store, clock.NewMockClock(testNow))

		req := reqdto.UpdateCouponRequest{
			ValidUntil: patch.Nullable[time.Time]{Set: true},
			MaxUses:    patch.Nullable[int32]{Set: true, Value: &five},
		}
		cp, err := uc.Update(ctx, "INSTA10", req, admin)
		require.NoError(t, err)

		assert.Nil(t, cp.ValidUntil())
		assert.Equal(t, int32(5), *cp.MaxUses())
		assert.Equal(t, 10, store.coupons["INSTA10"].Percentage().Int())
	})

	t.Run("limit below usage", func(t *testing.T) {
		store := newStore()
		uc := commands.NewCouponUseCase(store, clock.NewMockClock(testNow))
		one := int32(1)

		_, err := uc.Update(ctx, "INSTA10", reqdto.UpdateCouponRequest{MaxUses: patch.Nullable[int32]{Set: true, Value: &one}}, admin)
		assert.ErrorIs(t, err, coupon.ErrLimitBelowUsage)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Equal(t, int32(10), *store.coupons["INSTA10"].MaxUses())
	})

	t.Run("unknown code", func(t *testing.T) {
		uc := commands.NewCouponUseCase(newStore(), clock.NewMockClock(testNow))
		_, err := uc.Update(ctx, "NOPE", reqdto.UpdateCouponRequest{DiscountPercentage: &pct}, admin)
		assert.ErrorIs(t, err, commands.ErrCouponNotFound)
	})

	t.Run("admins only", func(t *testing.T) {
		uc := commands.NewCouponUseCase(newStore(), clock.NewMockClock(testNow))
		_, err := uc.Update(ctx, "INSTA10", reqdto.UpdateCouponRequest{DiscountPercentage: &pct}, builder.NewUserBuilder().BuildPrincipal())
		assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
	})
}
