package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/transaction"
	reqdto "course-marketplace/internal/handler/dto/request"
	"course-marketplace/internal/infra"
	"course-marketplace/internal/pkg/clock"
	"course-marketplace/internal/pkg/errs"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	manualCheckoutEndpoint = "POST /api/checkout/manual"
	idempotencyTTL         = 24 * time.Hour
)

type Quote struct {
	Subject        catalog.Subject
	Title          string
	BasePrice      decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	CouponCode     *string
}

type SubmitResult struct {
	Transaction *transaction.Transaction
	IsReplayed  bool
}

type CheckoutCommands interface {
	Quote(ctx context.Context, req reqdto.CheckoutRequest, buyerID uuid.UUID) (*Quote, error)
	SubmitManualPayment(ctx context.Context, req reqdto.CheckoutRequest, buyerID, idempotencyKey uuid.UUID) (*SubmitResult, error)
}

type checkoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics MetricsRecorder
}

func NewCheckoutUseCase(uow shared.UnitOfWork, clock clock.Clock, metrics MetricsRecorder) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:     uow,
		clock:   clock,
		metrics: metrics,
	}
}

// Quote prices a subject without consuming the coupon.
func (c *checkoutUseCaseImpl) Quote(ctx context.Context, req reqdto.CheckoutRequest, buyerID uuid.UUID) (*Quote, error) {
	subject, err := req.ToSubject()
	if err != nil {
		return nil, invalid(err)
	}
	reads := c.uow.CommandReads()
	offer, err := resolveOffer(ctx, reads, subject)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		Subject:        offer.Subject,
		Title:          offer.Title,
		BasePrice:      offer.Price,
		DiscountAmount: decimal.Zero,
		FinalAmount:    offer.Price,
	}
	code := req.GetCouponCode()
	if code == nil {
		return quote, nil
	}

	cp, err := lookupCoupon(ctx, reads, *code)
	if err != nil {
		return nil, err
	}
	if err := cp.Validate(buyerID, c.clock.Now()); err != nil {
		return nil, err
	}
	app, err := cp.Apply(offer.Price)
	if err != nil {
		return nil, invalid(err)
	}
	applied := app.Code.String()
	quote.DiscountAmount = app.DiscountAmount
	quote.FinalAmount = app.FinalAmount
	quote.CouponCode = &applied
	return quote, nil
}

func (c *checkoutUseCaseImpl) SubmitManualPayment(
	ctx context.Context,
	req reqdto.CheckoutRequest,
	buyerID, idempotencyKey uuid.UUID,
) (*SubmitResult, error) {
	subject, err := req.ToSubject()
	if err != nil {
		return nil, invalid(err)
	}
	requestHash := c.calculateRequestHash(req)

	replayID, err := c.handleIdempotency(ctx, idempotencyKey, buyerID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayID != nil {
		tx, err := c.uow.CommandReads().TransactionByID(ctx, *replayID)
		if err != nil {
			return nil, errs.Wrap(err, "load replayed transaction")
		}
		return &SubmitResult{Transaction: tx, IsReplayed: true}, nil
	}

	var created *transaction.Transaction
	err = retryOnConflict(ctx, "submit_manual_payment", func() error {
		return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			t, err := c.submitInTx(ctx, tx, req, subject, buyerID)
			if err != nil {
				return err
			}
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, buyerID, calculateIDHash(t.ID()), t.ID()); err != nil {
				return err
			}
			created = t
			return nil
		})
	})
	if err != nil {
		c.releaseIdempotencyKey(ctx, idempotencyKey, buyerID)
		if kind, ok := coupon.KindOf(err); ok {
			c.metrics.CouponRedemption(string(kind))
		}
		return nil, err
	}

	c.metrics.TransactionSubmitted()
	if created.CouponCode() != nil {
		c.metrics.CouponRedemption("applied")
	}
	return &SubmitResult{Transaction: created}, nil
}

func (c *checkoutUseCaseImpl) submitInTx(
	ctx context.Context,
	tx shared.Tx,
	req reqdto.CheckoutRequest,
	subject catalog.Subject,
	buyerID uuid.UUID,
) (*transaction.Transaction, error) {
	reads := tx.Reads()
	offer, err := resolveOffer(ctx, reads, subject)
	if err != nil {
		return nil, err
	}

	buyer, err := reads.UserByID(ctx, buyerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if buyer.OwnsAll(offer.CourseIDs) {
		return nil, ErrAlreadyOwned
	}

	now := c.clock.Now()
	var applied *coupon.Application
	if code := req.GetCouponCode(); code != nil {
		app, err := c.redeemCoupon(ctx, tx, *code, buyerID, offer.Price, now)
		if err != nil {
			return nil, err
		}
		applied = app
	}

	t, err := transaction.NewPending(buyerID, offer, applied, req.GetPaymentRef(), now)
	if err != nil {
		return nil, invalid(err)
	}
	if err := tx.Transactions().Create(ctx, tx.DB(), t); err != nil {
		return nil, err
	}

	return t, enqueueEvent(ctx, tx, TopicTransactionSubmitted, transactionEvent(t), now)
}

// redeemCoupon validates, prices and consumes one use in a single conditional update.
// A zero-row update is classified against a fresh read of the coupon.
func (c *checkoutUseCaseImpl) redeemCoupon(
	ctx context.Context,
	tx shared.Tx,
	code string,
	buyerID uuid.UUID,
	base decimal.Decimal,
	now time.Time,
) (*coupon.Application, error) {
	cp, err := lookupCoupon(ctx, tx.Reads(), code)
	if err != nil {
		return nil, err
	}
	if err := cp.Validate(buyerID, now); err != nil {
		return nil, err
	}
	app, err := cp.Apply(base)
	if err != nil {
		return nil, invalid(err)
	}

	redeemed, err := tx.Coupons().Redeem(ctx, tx.DB(), cp.Code(), buyerID, now)
	if err != nil {
		return nil, err
	}
	if redeemed {
		return &app, nil
	}

	fresh, err := lookupCoupon(ctx, tx.Reads(), code)
	if err != nil {
		return nil, err
	}
	if err := fresh.Validate(buyerID, now); err != nil {
		return nil, err
	}
	return nil, ErrRedeemConflict
}

// handleIdempotency returns the transaction id to replay, or nil when this request owns the key.
func (c *checkoutUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
) (*uuid.UUID, error) {
	var replayID *uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		expiresAt := now.Add(idempotencyTTL)

		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, manualCheckoutEndpoint, requestHash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, idempotencyKey, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrIdempotencyInProgress
			}
			return err
		}

		if !existing.ExpiresAt.After(now) {
			claimed, err := tx.Idempotency().ClaimExpiredIdempotencyKey(ctx, tx.DB(), idempotencyKey, userID, requestHash, expiresAt, now)
			if err != nil {
				return err
			}
			if claimed == 1 {
				return nil
			}
			return errs.ErrIdempotencyInProgress
		}

		if existing.RequestHash != requestHash {
			return ErrIdempotencyReuse
		}

		switch existing.Status {
		case shared.IdempotencyStatusCompleted:
			if existing.ResultTransactionID == nil {
				return errs.New("completed request missing result transaction ID")
			}
			replayID = existing.ResultTransactionID
			return nil
		case shared.IdempotencyStatusProcessing:
			return errs.ErrIdempotencyInProgress
		default:
			return errs.New("invalid idempotency key status")
		}
	})
	if err != nil {
		return nil, err
	}
	return replayID, nil
}

// releaseIdempotencyKey lets the client retry with the same key after a failed attempt.
func (c *checkoutUseCaseImpl) releaseIdempotencyKey(ctx context.Context, key, userID uuid.UUID) {
	err := c.uow.Within(context.WithoutCancel(ctx), func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, userID)
	})
	if err != nil {
		slog.Warn("failed to release idempotency key", "key", key, "error", err)
	}
}

func (c *checkoutUseCaseImpl) calculateRequestHash(req reqdto.CheckoutRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}

func resolveOffer(ctx context.Context, reads shared.CommandReads, subject catalog.Subject) (catalog.Offer, error) {
	if subject.IsTrack() {
		track, err := reads.TrackByID(ctx, subject.ID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return catalog.Offer{}, ErrTrackNotFound
			}
			return catalog.Offer{}, err
		}
		return track.Offer(), nil
	}

	course, err := reads.CourseByID(ctx, subject.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return catalog.Offer{}, ErrCourseNotFound
		}
		return catalog.Offer{}, err
	}
	return course.Offer(), nil
}

func lookupCoupon(ctx context.Context, reads shared.CommandReads, code string) (*coupon.Coupon, error) {
	cp, err := reads.CouponByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, coupon.NewRejection(coupon.KindNotFound, coupon.NormalizeCode(code))
		}
		return nil, err
	}
	return cp, nil
}
