package queries

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/model/rateconf"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMovesWithoutConfirmationQueryHandler retrieves completed moves with no
// matched rate confirmation. Uses direct SQL queries for optimal read
// performance in the CQRS pattern.
type GetMovesWithoutConfirmationQueryHandler struct {
	db *gorm.DB
}

// NewGetMovesWithoutConfirmationQueryHandler creates a handler for the unverified moves query.
// Requires a GORM database connection for query execution.
func NewGetMovesWithoutConfirmationQueryHandler(db *gorm.DB) GetMovesWithoutConfirmationQueryHandler {
	return GetMovesWithoutConfirmationQueryHandler{db: db}
}

// Handle executes the query to retrieve completed moves awaiting paperwork.
// Returns a slice of read models sorted by scheduled date, oldest first, so
// the longest-outstanding loads surface at the top of the worklist.
func (h GetMovesWithoutConfirmationQueryHandler) Handle(
	ctx context.Context,
	query GetMovesWithoutConfirmationQuery,
) ([]GetMovesWithoutConfirmationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	moves := make([]GetMovesWithoutConfirmationQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.origin,
			m.destination,
			m.scheduled_date,
			m.distance
		FROM moves m
		WHERE m.status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM rate_confirmations rc
			WHERE rc.matched_to_move_id = m.id AND rc.status = ?
		  )
		ORDER BY m.scheduled_date
	`, move.Completed, rateconf.Matched).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetMovesWithoutConfirmationQueryResponse
		var id uuid.UUID
		var originName, destinationName string

		err = rows.Scan(
			&id,
			&originName,
			&destinationName,
			&response.ScheduledDate,
			&response.Distance,
		)
		if err != nil {
			return nil, err
		}

		moveID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = moveID

		origin, locErr := kernel.NewLocation(originName)
		if locErr != nil {
			return nil, locErr
		}
		response.Origin = origin

		destination, locErr := kernel.NewLocation(destinationName)
		if locErr != nil {
			return nil, locErr
		}
		response.Destination = destination
		moves = append(moves, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return moves, nil
}
