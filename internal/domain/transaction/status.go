package transaction

import "errors"

var ErrInvalidStatus = errors.New("invalid transaction status")

type Status string

const (
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
)

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPendingApproval, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
