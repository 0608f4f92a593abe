// Package moverepo provides data transfer objects and mapping functions for move persistence.
// The move aggregate spans two tables: the moves row itself and a move_drivers
// child row per assigned driver, kept in assignment order via the position
// column. Payment figures live on the move row, per-driver shares on the
// child rows, all null until the move completes.
package moverepo

import (
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoveDTO represents the database structure for persisting move aggregates.
type MoveDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	NewTrailerID     *uuid.UUID          `gorm:"type:uuid;index"`
	OldTrailerID     *uuid.UUID          `gorm:"type:uuid;index"`
	Origin           string              `gorm:"type:varchar(255);not null"`
	Destination      string              `gorm:"type:varchar(255);not null"`
	ScheduledDate    time.Time           `gorm:"not null;index"`
	Status           int                 `gorm:"type:int;not null;index"`
	Distance         decimal.NullDecimal `gorm:"type:decimal(10,1)"`
	Gross            decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	FactoringFee     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	ServiceFee       decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Net              decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	ReportedDelta    decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	ReportedDeltaPct decimal.NullDecimal `gorm:"type:decimal(8,2)"`
	CancelReason     string              `gorm:"type:varchar(255)"`
	Drivers          []MoveDriverDTO     `gorm:"foreignKey:MoveID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for move entities.
// Overrides GORM's default naming convention to use "moves" instead of "move_dtos".
func (MoveDTO) TableName() string {
	return "moves"
}

// MoveDriverDTO represents one driver assigned to a move. Position preserves
// assignment order, which is also the order the payout rounding remainder is
// applied in, so it must survive the round trip.
type MoveDriverDTO struct {
	MoveID     uuid.UUID           `gorm:"type:uuid;primaryKey"`
	DriverID   uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Position   int                 `gorm:"type:int;not null"`
	Net        decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	ServiceFee decimal.NullDecimal `gorm:"type:decimal(12,2)"`
}

// TableName specifies the database table name for move driver assignments.
func (MoveDriverDTO) TableName() string {
	return "move_drivers"
}

// fromDomain converts a move domain aggregate to its database representation.
func fromDomain(move *move.Move) MoveDTO {
	dto := MoveDTO{
		ID:            move.ID().Bytes(),
		Origin:        move.Origin().Name(),
		Destination:   move.Destination().Name(),
		ScheduledDate: move.ScheduledDate(),
		Status:        int(move.Status()),
		CancelReason:  move.CancelReason(),
	}

	if id := move.NewTrailerID(); id != nil {
		raw := id.Bytes()
		dto.NewTrailerID = &raw
	}
	if id := move.OldTrailerID(); id != nil {
		raw := id.Bytes()
		dto.OldTrailerID = &raw
	}

	if d := move.Distance(); d != nil {
		dto.Distance = decimal.NewNullDecimal(*d)
	}
	if d := move.ReportedDelta(); d != nil {
		dto.ReportedDelta = decimal.NewNullDecimal(*d)
	}
	if d := move.ReportedDeltaPct(); d != nil {
		dto.ReportedDeltaPct = decimal.NewNullDecimal(*d)
	}

	shareByDriver := make(map[uuid.UUID]payment.DriverShare)
	if b := move.Breakdown(); b != nil {
		dto.Gross = decimal.NewNullDecimal(b.Gross())
		dto.FactoringFee = decimal.NewNullDecimal(b.FactoringFee())
		dto.ServiceFee = decimal.NewNullDecimal(b.ServiceFee())
		dto.Net = decimal.NewNullDecimal(b.Net())
		for _, share := range b.Shares() {
			shareByDriver[share.DriverID.Bytes()] = share
		}
	}

	for position, driverID := range move.DriverIDs() {
		row := MoveDriverDTO{
			MoveID:   dto.ID,
			DriverID: driverID.Bytes(),
			Position: position,
		}
		if share, ok := shareByDriver[row.DriverID]; ok {
			row.Net = decimal.NewNullDecimal(share.Net)
			row.ServiceFee = decimal.NewNullDecimal(share.ServiceFee)
		}
		dto.Drivers = append(dto.Drivers, row)
	}

	return dto
}

// toDomain converts a database DTO to a move domain aggregate.
// The Drivers slice must be preloaded in position order.
func toDomain(dto MoveDTO) (*move.Move, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewLocation(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewLocation(dto.Destination)
	if err != nil {
		return nil, err
	}

	var newTrailerID, oldTrailerID *kernel.UUID
	if dto.NewTrailerID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.NewTrailerID)[:])
		if tErr != nil {
			return nil, tErr
		}
		newTrailerID = &tID
	}
	if dto.OldTrailerID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.OldTrailerID)[:])
		if tErr != nil {
			return nil, tErr
		}
		oldTrailerID = &tID
	}

	driverIDs := make([]kernel.UUID, 0, len(dto.Drivers))
	shares := make([]payment.DriverShare, 0, len(dto.Drivers))
	for _, row := range dto.Drivers {
		driverID, dErr := kernel.UUIDFromBytes(row.DriverID[:])
		if dErr != nil {
			return nil, dErr
		}
		driverIDs = append(driverIDs, driverID)
		if row.Net.Valid {
			shares = append(shares, payment.DriverShare{
				DriverID:   driverID,
				Net:        row.Net.Decimal,
				ServiceFee: row.ServiceFee.Decimal,
			})
		}
	}

	var breakdown *payment.Breakdown
	if dto.Net.Valid {
		b, bErr := payment.NewBreakdown(
			dto.Gross.Decimal,
			dto.FactoringFee.Decimal,
			dto.ServiceFee.Decimal,
			dto.Net.Decimal,
			shares,
		)
		if bErr != nil {
			return nil, bErr
		}
		breakdown = &b
	}

	return move.RestoreMove(
		id,
		newTrailerID,
		oldTrailerID,
		driverIDs,
		origin,
		destination,
		dto.ScheduledDate,
		move.Status(dto.Status),
		nullableDecimal(dto.Distance),
		breakdown,
		nullableDecimal(dto.ReportedDelta),
		nullableDecimal(dto.ReportedDeltaPct),
		dto.CancelReason,
	)
}

func nullableDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	value := d.Decimal
	return &value
}
