// Package rateconfrepo provides data transfer objects and mapping functions for
// rate confirmation persistence. The matched_to_move_id column carries a unique
// index so the database itself refuses a second confirmation on the same move,
// whatever two racing transactions believe.
package rateconfrepo

import (
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/rateconf"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateConfirmationDTO represents the database structure for persisting rate
// confirmation aggregates.
type RateConfirmationDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference        string          `gorm:"type:varchar(128);not null;index"`
	ReportedDistance decimal.Decimal `gorm:"type:decimal(10,1);not null"`
	ReportedRate     decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	ReportedTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes            string          `gorm:"type:text"`
	Status           int             `gorm:"type:int;not null;index"`
	MatchedToMoveID  *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	MatchedBy        string          `gorm:"type:varchar(255)"`
	MatchedAt        *time.Time
}

// TableName specifies the database table name for rate confirmation entities.
func (RateConfirmationDTO) TableName() string {
	return "rate_confirmations"
}

// fromDomain converts a rate confirmation domain aggregate to its database representation.
func fromDomain(rc *rateconf.RateConfirmation) RateConfirmationDTO {
	dto := RateConfirmationDTO{
		ID:               rc.ID().Bytes(),
		Reference:        rc.Reference(),
		ReportedDistance: rc.ReportedDistance(),
		ReportedRate:     rc.ReportedRate(),
		ReportedTotal:    rc.ReportedTotal(),
		Notes:            rc.Notes(),
		Status:           int(rc.Status()),
		MatchedBy:        rc.MatchedBy(),
		MatchedAt:        rc.MatchedAt(),
	}

	if id := rc.MatchedTo(); id != nil {
		raw := id.Bytes()
		dto.MatchedToMoveID = &raw
	}

	return dto
}

// toDomain converts a database DTO to a rate confirmation domain aggregate.
func toDomain(dto RateConfirmationDTO) (*rateconf.RateConfirmation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var matchedTo *kernel.UUID
	if dto.MatchedToMoveID != nil {
		moveID, mErr := kernel.UUIDFromBytes((*dto.MatchedToMoveID)[:])
		if mErr != nil {
			return nil, mErr
		}
		matchedTo = &moveID
	}

	return rateconf.RestoreRateConfirmation(
		id,
		dto.Reference,
		dto.ReportedDistance,
		dto.ReportedRate,
		dto.ReportedTotal,
		dto.Notes,
		rateconf.Status(dto.Status),
		matchedTo,
		dto.MatchedBy,
		dto.MatchedAt,
	)
}
