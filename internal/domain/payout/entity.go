package payout

import (
	"errors"
	"strings"
	"time"

	"course-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("payout amount must be positive")
	ErrInvalidStatus     = errors.New("invalid payout status")
	ErrMissingPixKey     = errors.New("pix key is required")
	ErrTransition        = errs.Mark(errs.New("payout status transition not allowed"), errs.ErrInvalidState)
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

var transitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusFailed},
	StatusProcessing: {StatusCompleted, StatusFailed},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BankDetails is copied into the payout at request time so later profile edits
// do not change where an in-flight payout goes.
type BankDetails struct {
	PixKey     string `json:"pixKey"`
	HolderName string `json:"holderName,omitempty"`
	BankName   string `json:"bankName,omitempty"`
}

func (d BankDetails) Validate() error {
	if strings.TrimSpace(d.PixKey) == "" {
		return ErrMissingPixKey
	}
	return nil
}

type Payout struct {
	id          uuid.UUID
	recipientID uuid.UUID
	amount      decimal.Decimal
	details     BankDetails
	status      Status
	requestedAt time.Time
	processedAt *time.Time
}

func NewPayout(recipientID uuid.UUID, amount decimal.Decimal, details BankDetails, now time.Time) (*Payout, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}
	return &Payout{
		id:          uuid.New(),
		recipientID: recipientID,
		amount:      amount.Round(2),
		details:     details,
		status:      StatusPending,
		requestedAt: now,
	}, nil
}

func ReconstructPayout(id, recipientID uuid.UUID, amount decimal.Decimal, details BankDetails, status Status, requestedAt time.Time, processedAt *time.Time) *Payout {
	return &Payout{
		id:          id,
		recipientID: recipientID,
		amount:      amount,
		details:     details,
		status:      status,
		requestedAt: requestedAt,
		processedAt: processedAt,
	}
}

// TransitionTo stamps processedAt when the payout reaches a terminal status.
func (p *Payout) TransitionTo(next Status, now time.Time) error {
	if !p.status.CanTransitionTo(next) {
		return ErrTransition
	}
	p.status = next
	if next.IsTerminal() {
		p.processedAt = &now
	}
	return nil
}

func (p *Payout) ID() uuid.UUID           { return p.id }
func (p *Payout) RecipientID() uuid.UUID  { return p.recipientID }
func (p *Payout) Amount() decimal.Decimal { return p.amount }
func (p *Payout) Details() BankDetails    { return p.details }
func (p *Payout) Status() Status          { return p.status }
func (p *Payout) RequestedAt() time.Time  { return p.requestedAt }
func (p *Payout) ProcessedAt() *time.Time { return p.processedAt }
