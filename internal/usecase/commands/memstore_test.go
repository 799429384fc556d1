//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/certificate"
	"course-marketplace/internal/domain/coupon"
	"course-marketplace/internal/domain/entitlement"
	"course-marketplace/internal/domain/payout"
	"course-marketplace/internal/domain/progress"
	"course-marketplace/internal/domain/transaction"
	"course-marketplace/internal/domain/user"
	"course-marketplace/internal/infra"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory unit of work. Within snapshots every table and restores
// it when fn fails, so tests observe commit/rollback the way the postgres UoW behaves.
type memStore struct {
	mu sync.Mutex

	courses      map[uuid.UUID]*catalog.Course
	tracks       map[uuid.UUID]*catalog.Track
	users        map[uuid.UUID]*user.User
	coupons      map[string]*coupon.Coupon
	transactions map[uuid.UUID]*transaction.Transaction
	progress     map[pairKey]*progress.Progress
	certificates map[pairKey]*certificate.Certificate
	payouts      map[uuid.UUID]*payout.Payout
	idempotency  map[pairKey]*shared.IdempotencyRecord
	events       []storedEvent

	// fault injection
	redeemMisses int
	beforeDecide func(s *memStore, id uuid.UUID)
}

type pairKey struct{ a, b uuid.UUID }

type storedEvent struct {
	Topic   string
	Payload map[string]any
}

func newMemStore() *memStore {
	return &memStore{
		courses:      map[uuid.UUID]*catalog.Course{},
		tracks:       map[uuid.UUID]*catalog.Track{},
		users:        map[uuid.UUID]*user.User{},
		coupons:      map[string]*coupon.Coupon{},
		transactions: map[uuid.UUID]*transaction.Transaction{},
		progress:     map[pairKey]*progress.Progress{},
		certificates: map[pairKey]*certificate.Certificate{},
		payouts:      map[uuid.UUID]*payout.Payout{},
		idempotency:  map[pairKey]*shared.IdempotencyRecord{},
	}
}

type memSnapshot struct {
	users        map[uuid.UUID]*user.User
	coupons      map[string]*coupon.Coupon
	transactions map[uuid.UUID]*transaction.Transaction
	progress     map[pairKey]*progress.Progress
	certificates map[pairKey]*certificate.Certificate
	payouts      map[uuid.UUID]*payout.Payout
	idempotency  map[pairKey]*shared.IdempotencyRecord
	events       []storedEvent
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Stored values are never mutated in place, so shallow copies are enough.
func (s *memStore) snapshot() memSnapshot {
	idem := make(map[pairKey]*shared.IdempotencyRecord, len(s.idempotency))
	for k, v := range s.idempotency {
		rec := *v
		idem[k] = &rec
	}
	return memSnapshot{
		users:        copyMap(s.users),
		coupons:      copyMap(s.coupons),
		transactions: copyMap(s.transactions),
		progress:     copyMap(s.progress),
		certificates: copyMap(s.certificates),
		payouts:      copyMap(s.payouts),
		idempotency:  idem,
		events:       append([]storedEvent(nil), s.events...),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.users = snap.users
	s.coupons = snap.coupons
	s.transactions = snap.transactions
	s.progress = snap.progress
	s.certificates = snap.certificates
	s.payouts = snap.payouts
	s.idempotency = snap.idempotency
	s.events = snap.events
}

// UnitOfWork

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	if err := fn(ctx, memTx{s}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) CommandReads() shared.CommandReads {
	return memReads{s}
}

// seed helpers

func (s *memStore) addCourse(c *catalog.Course)               { s.courses[c.ID()] = c }
func (s *memStore) addTrack(t *catalog.Track)                 { s.tracks[t.ID()] = t }
func (s *memStore) addUser(u *user.User)                      { s.users[u.ID()] = u }
func (s *memStore) addCoupon(c *coupon.Coupon)                { s.coupons[c.Code().String()] = cloneCoupon(c) }
func (s *memStore) addTransaction(t *transaction.Transaction) { s.transactions[t.ID()] = cloneTransaction(t) }
func (s *memStore) addPayout(p *payout.Payout)                { s.payouts[p.ID()] = clonePayout(p) }

func (s *memStore) eventTopics() []string {
	topics := make([]string, 0, len(s.events))
	for _, e := range s.events {
		topics = append(topics, e.Topic)
	}
	return topics
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// Tx

type memTx struct{ s *memStore }

func (t memTx) Transactions() shared.TransactionRepository   { return memTransactions(t) }
func (t memTx) Coupons() shared.CouponRepository             { return memCoupons(t) }
func (t memTx) Users() shared.UserRepository                 { return memUsers(t) }
func (t memTx) Progress() shared.ProgressRepository          { return memProgress(t) }
func (t memTx) Certificates() shared.CertificateRepository   { return memCertificates(t) }
func (t memTx) Payouts() shared.PayoutRepository             { return memPayouts(t) }
func (t memTx) Idempotency() shared.IdempotencyRepository    { return memIdempotency(t) }
func (t memTx) Notifications() shared.NotificationRepository { return memNotifications(t) }
func (t memTx) Reads() shared.CommandReads                   { return memReads(t) }
func (t memTx) DB() sqlc.DBTX                                { return nil }

// CommandReads

type memReads struct{ s *memStore }

func (r memReads) CourseByID(_ context.Context, id uuid.UUID) (*catalog.Course, error) {
	c, ok := r.s.courses[id]
	if !ok {
		return nil, notFound("course not found")
	}
	return c, nil
}

func (r memReads) TrackByID(_ context.Context, id uuid.UUID) (*catalog.Track, error) {
	t, ok := r.s.tracks[id]
	if !ok {
		return nil, notFound("track not found")
	}
	return t, nil
}

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return u, nil
}

func (r memReads) CouponByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	c, ok := r.s.coupons[coupon.NormalizeCode(code)]
	if !ok {
		return nil, notFound("coupon not found")
	}
	return cloneCoupon(c), nil
}

func (r memReads) TransactionByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, notFound("transaction not found")
	}
	return cloneTransaction(t), nil
}

func (r memReads) ProgressFor(_ context.Context, userID, courseID uuid.UUID) (*progress.Progress, error) {
	p, ok := r.s.progress[pairKey{userID, courseID}]
	if !ok {
		return nil, notFound("progress not found")
	}
	return cloneProgress(p), nil
}

func (r memReads) CertificateFor(_ context.Context, userID, courseID uuid.UUID) (*certificate.Certificate, error) {
	c, ok := r.s.certificates[pairKey{userID, courseID}]
	if !ok {
		return nil, notFound("certificate not found")
	}
	return c, nil
}

func (r memReads) PayoutByID(_ context.Context, id uuid.UUID) (*payout.Payout, error) {
	p, ok := r.s.payouts[id]
	if !ok {
		return nil, notFound("payout not found")
	}
	return clonePayout(p), nil
}

func (r memReads) BalanceFor(_ context.Context, recipientID uuid.UUID) (payout.Balance, error) {
	b := payout.Balance{Accrued: decimal.Zero, PaidOut: decimal.Zero, Reserved: decimal.Zero}
	for _, t := range r.s.transactions {
		if t.Status() == transaction.StatusApproved && t.SellerID() != nil && *t.SellerID() == recipientID {
			b.Accrued = b.Accrued.Add(t.SellerNet())
		}
	}
	for _, p := range r.s.payouts {
		if p.RecipientID() != recipientID {
			continue
		}
		switch p.Status() {
		case payout.StatusCompleted:
			b.PaidOut = b.PaidOut.Add(p.Amount())
		case payout.StatusPending, payout.StatusProcessing:
			b.Reserved = b.Reserved.Add(p.Amount())
		}
	}
	return b, nil
}

func (r memReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.idempotency[pairKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	out := *rec
	return &out, nil
}

// repositories

type memTransactions memTx

func (r memTransactions) Create(_ context.Context, _ sqlc.DBTX, t *transaction.Transaction) error {
	r.s.transactions[t.ID()] = cloneTransaction(t)
	return nil
}

func (r memTransactions) MarkApproved(_ context.Context, _ sqlc.DBTX, t *transaction.Transaction) (bool, error) {
	return r.mark(t), nil
}

func (r memTransactions) MarkRejected(_ context.Context, _ sqlc.DBTX, t *transaction.Transaction) (bool, error) {
	return r.mark(t), nil
}

func (r memTransactions) mark(t *transaction.Transaction) bool {
	if r.s.beforeDecide != nil {
		hook := r.s.beforeDecide
		r.s.beforeDecide = nil
		hook(r.s, t.ID())
	}
	stored, ok := r.s.transactions[t.ID()]
	if !ok || stored.Status() != transaction.StatusPendingApproval {
		return false
	}
	r.s.transactions[t.ID()] = cloneTransaction(t)
	return true
}

type memCoupons memTx

func (r memCoupons) Create(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	if _, ok := r.s.coupons[c.Code().String()]; ok {
		return infra.WrapRepoErr("coupon exists", nil, infra.KindDuplicateKey)
	}
	r.s.coupons[c.Code().String()] = cloneCoupon(c)
	return nil
}

func (r memCoupons) UpdateTerms(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon, _ time.Time) error {
	if _, ok := r.s.coupons[c.Code().String()]; !ok {
		return notFound("coupon not found")
	}
	r.s.coupons[c.Code().String()] = cloneCoupon(c)
	return nil
}

func (r memCoupons) Redeem(_ context.Context, _ sqlc.DBTX, code coupon.Code, userID uuid.UUID, now time.Time) (bool, error) {
	if r.s.redeemMisses > 0 {
		r.s.redeemMisses--
		return false, nil
	}
	c, ok := r.s.coupons[code.String()]
	if !ok || c.Validate(userID, now) != nil {
		return false, nil
	}
	r.s.coupons[code.String()] = coupon.ReconstructCoupon(
		c.Code().String(), c.Percentage().Int(), c.ValidUntil(), c.MaxUses(), c.MaxUsesPerUser(),
		append(c.UsedBy(), userID), c.CreatedAt(),
	)
	return true, nil
}

type memUsers memTx

func (r memUsers) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (user.Role, error) {
	u, ok := r.s.users[id]
	if !ok {
		return "", notFound("user not found")
	}
	return u.Role(), nil
}

func (r memUsers) GrantCourses(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, courseIDs []uuid.UUID) ([]uuid.UUID, error) {
	u, ok := r.s.users[userID]
	if !ok {
		return nil, notFound("user not found")
	}
	owned := entitlement.Merge(u.OwnedCourses(), courseIDs)
	r.s.users[userID] = user.ReconstructUser(u.ID(), u.Name(), u.Role(), owned)
	return owned, nil
}

type memProgress memTx

func (r memProgress) RecordLesson(_ context.Context, _ sqlc.DBTX, userID, courseID uuid.UUID, key progress.LessonKey, now time.Time) (*progress.Progress, error) {
	return r.upsert(userID, courseID, now, func(completed []string, scores map[string]progress.QuizResult) ([]string, map[string]progress.QuizResult) {
		return appendUnique(completed, key.String()), scores
	}), nil
}

func (r memProgress) RecordQuiz(_ context.Context, _ sqlc.DBTX, userID, courseID uuid.UUID, quizKey string, result progress.QuizResult, markCompleted bool, now time.Time) (*progress.Progress, error) {
	return r.upsert(userID, courseID, now, func(completed []string, scores map[string]progress.QuizResult) ([]string, map[string]progress.QuizResult) {
		scores[quizKey] = result
		if markCompleted {
			completed = appendUnique(completed, quizKey)
		}
		return completed, scores
	}), nil
}

func (r memProgress) upsert(userID, courseID uuid.UUID, now time.Time, apply func([]string, map[string]progress.QuizResult) ([]string, map[string]progress.QuizResult)) *progress.Progress {
	k := pairKey{userID, courseID}
	completed := []string{}
	scores := map[string]progress.QuizResult{}
	if p, ok := r.s.progress[k]; ok {
		completed = p.CompletedLessons()
		scores = p.QuizScores()
	}
	completed, scores = apply(completed, scores)
	p := progress.Reconstruct(userID, courseID, completed, scores, now)
	r.s.progress[k] = p
	return cloneProgress(p)
}

func appendUnique(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

type memCertificates memTx

func (r memCertificates) InsertIfAbsent(_ context.Context, _ sqlc.DBTX, c *certificate.Certificate) (bool, error) {
	k := pairKey{c.UserID(), c.CourseID()}
	if _, ok := r.s.certificates[k]; ok {
		return false, nil
	}
	for _, existing := range r.s.certificates {
		if existing.Code() == c.Code() {
			return false, infra.WrapRepoErr("certificate code exists", nil, infra.KindDuplicateKey)
		}
	}
	r.s.certificates[k] = c
	return true, nil
}

type memPayouts memTx

func (r memPayouts) Create(_ context.Context, _ sqlc.DBTX, p *payout.Payout) error {
	r.s.payouts[p.ID()] = clonePayout(p)
	return nil
}

func (r memPayouts) Transition(_ context.Context, _ sqlc.DBTX, id uuid.UUID, from payout.Status, p *payout.Payout) (bool, error) {
	stored, ok := r.s.payouts[id]
	if !ok || stored.Status() != from {
		return false, nil
	}
	r.s.payouts[id] = clonePayout(p)
	return true, nil
}

type memIdempotency memTx

func (r memIdempotency) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, requestHash string, expiresAt time.Time) (bool, error) {
	k := pairKey{key, userID}
	if _, ok := r.s.idempotency[k]; ok {
		return false, nil
	}
	r.s.idempotency[k] = &shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyStatusProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return true, nil
}

func (r memIdempotency) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, transactionID uuid.UUID) error {
	rec, ok := r.s.idempotency[pairKey{key, userID}]
	if !ok {
		return notFound("idempotency key not found")
	}
	rec.Status = shared.IdempotencyStatusCompleted
	rec.ResultTransactionID = &transactionID
	return nil
}

func (r memIdempotency) ClaimExpiredIdempotencyKey(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (int64, error) {
	rec, ok := r.s.idempotency[pairKey{key, userID}]
	if !ok || !rec.ExpiresAt.Before(now) {
		return 0, nil
	}
	rec.Status = shared.IdempotencyStatusProcessing
	rec.RequestHash = requestHash
	rec.ResultTransactionID = nil
	rec.ExpiresAt = expiresAt
	return 1, nil
}

func (r memIdempotency) Release(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID) error {
	k := pairKey{key, userID}
	if rec, ok := r.s.idempotency[k]; ok && rec.Status == shared.IdempotencyStatusProcessing {
		delete(r.s.idempotency, k)
	}
	return nil
}

type memNotifications memTx

func (r memNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, _ string, topic string, payload []byte, _ time.Time) error {
	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return err
	}
	r.s.events = append(r.s.events, storedEvent{Topic: topic, Payload: decoded})
	return nil
}

// clones

func cloneTransaction(t *transaction.Transaction) *transaction.Transaction {
	return transaction.Reconstruct(transaction.Snapshot{
		ID:             t.ID(),
		BuyerID:        t.BuyerID(),
		SellerID:       t.SellerID(),
		Subject:        t.Subject(),
		Amount:         t.Amount(),
		PlatformFee:    t.PlatformFee(),
		SellerNet:      t.SellerNet(),
		PaymentRef:     t.PaymentRef(),
		Status:         t.Status(),
		CouponCode:     t.CouponCode(),
		DiscountAmount: t.DiscountAmount(),
		DecidedBy:      t.DecidedBy(),
		DecidedAt:      t.DecidedAt(),
		CreatedAt:      t.CreatedAt(),
	})
}

func cloneCoupon(c *coupon.Coupon) *coupon.Coupon {
	return coupon.ReconstructCoupon(c.Code().String(), c.Percentage().Int(), c.ValidUntil(), c.MaxUses(), c.MaxUsesPerUser(), c.UsedBy(), c.CreatedAt())
}

func cloneProgress(p *progress.Progress) *progress.Progress {
	return progress.Reconstruct(p.UserID(), p.CourseID(), p.CompletedLessons(), p.QuizScores(), p.LastAccessed())
}

func clonePayout(p *payout.Payout) *payout.Payout {
	return payout.ReconstructPayout(p.ID(), p.RecipientID(), p.Amount(), p.Details(), p.Status(), p.RequestedAt(), p.ProcessedAt())
}

// metrics

type countingMetrics struct {
	submitted    int
	decided      map[string]int
	redemptions  map[string]int
	certificates int
	payouts      int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{decided: map[string]int{}, redemptions: map[string]int{}}
}

func (m *countingMetrics) TransactionSubmitted()            { m.submitted++ }
func (m *countingMetrics) TransactionDecided(status string) { m.decided[status]++ }
func (m *countingMetrics) CouponRedemption(result string)   { m.redemptions[result]++ }
func (m *countingMetrics) CertificateIssued()               { m.certificates++ }
func (m *countingMetrics) PayoutRequested()                 { m.payouts++ }
