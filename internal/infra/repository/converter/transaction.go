package converter

import (
	"course-marketplace/internal/domain/catalog"
	"course-marketplace/internal/domain/transaction"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

func TransactionFromRow(row sqlc.Transactions) (*transaction.Transaction, error) {
	subject, err := catalog.NewSubject(row.SubjectKind, row.SubjectID)
	if err != nil {
		return nil, err
	}
	status, err := transaction.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return transaction.Reconstruct(transaction.Snapshot{
		ID:             row.ID,
		BuyerID:        row.BuyerID,
		SellerID:       pgconv.UUIDPtrFromPgtype(row.SellerID),
		Subject:        subject,
		Amount:         row.Amount,
		PlatformFee:    row.PlatformFee,
		SellerNet:      row.SellerNet,
		PaymentRef:     row.ExternalPaymentRef,
		Status:         status,
		CouponCode:     pgconv.StringPtrFromPgtype(row.AppliedCouponCode),
		DiscountAmount: row.DiscountAmount,
		DecidedBy:      pgconv.UUIDPtrFromPgtype(row.DecidedBy),
		DecidedAt:      pgconv.TimePtrFromPgtype(row.DecidedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}), nil
}
