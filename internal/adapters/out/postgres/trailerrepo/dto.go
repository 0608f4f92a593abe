// Package trailerrepo provides data transfer objects and mapping functions for trailer persistence.
// This package implements the repository pattern for the trailer domain aggregate, handling
// the conversion between domain entities and database representations.
package trailerrepo

import (
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/trailer"

	"github.com/google/uuid"
)

// TrailerDTO represents the database structure for persisting trailer aggregates.
// The unit number carries a unique index so the same physical trailer cannot be
// registered twice.
type TrailerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Location string    `gorm:"type:varchar(255);not null"`
	Status   int       `gorm:"type:int;not null;index"`
	Retired  bool      `gorm:"type:boolean;not null;default:false"`
}

// TableName specifies the database table name for trailer entities.
// Overrides GORM's default naming convention to use "trailers" instead of "trailer_dtos".
func (TrailerDTO) TableName() string {
	return "trailers"
}

// fromDomain converts a trailer domain aggregate to its database representation.
func fromDomain(trailer *trailer.Trailer) TrailerDTO {
	return TrailerDTO{
		ID:       trailer.ID().Bytes(),
		Number:   trailer.Number(),
		Location: trailer.Location().Name(),
		Status:   int(trailer.Status()),
		Retired:  trailer.IsRetired(),
	}
}

// toDomain converts a database DTO to a trailer domain aggregate.
// Reconstructs the aggregate using RestoreTrailer so the persisted status
// survives the round trip.
func toDomain(dto TrailerDTO) (*trailer.Trailer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	return trailer.RestoreTrailer(id, dto.Number, location, trailer.Status(dto.Status), dto.Retired)
}
