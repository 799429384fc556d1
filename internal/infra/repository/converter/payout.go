package converter

import (
	"encoding/json"

	"course-marketplace/internal/domain/payout"
	sqlc "course-marketplace/internal/infra/sqlc/generated"
	"course-marketplace/internal/pkg/pgconv"
)

func PayoutFromRow(row sqlc.Payouts) (*payout.Payout, error) {
	status, err := payout.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	var details payout.BankDetails
	if len(row.BankDetails) > 0 {
		if err := json.Unmarshal(row.BankDetails, &details); err != nil {
			return nil, err
		}
	}
	return payout.ReconstructPayout(
		row.ID,
		row.RecipientID,
		row.Amount,
		details,
		status,
		pgconv.TimeFromPgtype(row.RequestedAt),
		pgconv.TimePtrFromPgtype(row.ProcessedAt),
	), nil
}
