package queries

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/rateconf"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnmatchedRateConfirmationsQueryHandler retrieves the reconciliation worklist.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetUnmatchedRateConfirmationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnmatchedRateConfirmationsQueryHandler creates a handler for the worklist query.
// Requires a GORM database connection for query execution.
func NewGetUnmatchedRateConfirmationsQueryHandler(db *gorm.DB) GetUnmatchedRateConfirmationsQueryHandler {
	return GetUnmatchedRateConfirmationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all unmatched rate confirmations.
// Returns a slice of read models sorted by broker reference.
func (h GetUnmatchedRateConfirmationsQueryHandler) Handle(
	ctx context.Context,
	query GetUnmatchedRateConfirmationsQuery,
) ([]GetUnmatchedRateConfirmationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	confirmations := make([]GetUnmatchedRateConfirmationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			reported_distance,
			reported_rate,
			reported_total
		FROM rate_confirmations
		WHERE status = ?
		ORDER BY reference
	`, rateconf.Unmatched).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUnmatchedRateConfirmationsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Reference,
			&response.ReportedDistance,
			&response.ReportedRate,
			&response.ReportedTotal,
		)
		if err != nil {
			return nil, err
		}

		confirmationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = confirmationID
		confirmations = append(confirmations, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return confirmations, nil
}
