package queries

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueMovesQueryHandler retrieves open moves whose scheduled date has
// passed. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetOverdueMovesQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueMovesQueryHandler creates a handler for the overdue moves query.
// Requires a GORM database connection for query execution.
func NewGetOverdueMovesQueryHandler(db *gorm.DB) GetOverdueMovesQueryHandler {
	return GetOverdueMovesQueryHandler{db: db}
}

// Handle executes the query to retrieve overdue moves.
// A move is overdue when it was scheduled strictly before the cutoff and is
// neither completed nor cancelled. Returns read models sorted by scheduled
// date, oldest first.
func (h GetOverdueMovesQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueMovesQuery,
) ([]GetOverdueMovesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	moves := make([]GetOverdueMovesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin,
			destination,
			scheduled_date,
			status
		FROM moves
		WHERE scheduled_date < ? AND status IN (?, ?, ?)
		ORDER BY scheduled_date
	`, query.AsOf(), move.Pending, move.Assigned, move.InProgress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOverdueMovesQueryResponse
		var id uuid.UUID
		var originName, destinationName string
		var status int

		err = rows.Scan(
			&id,
			&originName,
			&destinationName,
			&response.ScheduledDate,
			&status,
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

		response.Status = move.Status(status).String()
		moves = append(moves, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return moves, nil
}
