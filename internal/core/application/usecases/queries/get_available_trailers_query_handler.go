package queries

import (
	"context"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/trailer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableTrailersQueryHandler retrieves the pool of claimable trailers.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAvailableTrailersQueryHandler(db)
//	query := NewGetAvailableTrailersQuery()
//
//	trailers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get trailers: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d free trailers\n", len(trailers))
type GetAvailableTrailersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableTrailersQueryHandler creates a handler for trailer pool queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableTrailersQueryHandler(db *gorm.DB) GetAvailableTrailersQueryHandler {
	return GetAvailableTrailersQueryHandler{db: db}
}

// Handle executes the query to retrieve all available trailers.
// Retired trailers never appear here, regardless of status.
// Returns a slice of trailer read models sorted by unit number.
func (h GetAvailableTrailersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTrailersQuery,
) ([]GetAvailableTrailersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trailers := make([]GetAvailableTrailersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			location
		FROM trailers
		WHERE status = ? AND retired = FALSE
		ORDER BY number
	`, trailer.Available).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAvailableTrailersQueryResponse
		var id uuid.UUID
		var locationName string

		err = rows.Scan(
			&id,
			&response.Number,
			&locationName,
		)
		if err != nil {
			return nil, err
		}

		trailerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = trailerID

		location, locErr := kernel.NewLocation(locationName)
		if locErr != nil {
			return nil, locErr
		}
		response.Location = location
		trailers = append(trailers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trailers, nil
}
