package moverepo

import (
	"context"
	"errors"
	"time"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMoveRepository implements MoveRepository using GORM.
type GormMoveRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMoveRepository creates a new GORM move repository.
func NewGormMoveRepository(db *gorm.DB, tracker aggregateTracker) *GormMoveRepository {
	return &GormMoveRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new move to the database.
func (r *GormMoveRepository) Add(ctx context.Context, aggregate *move.Move) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing move to the database.
func (r *GormMoveRepository) Update(ctx context.Context, aggregate *move.Move) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update the driver rows
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a move by ID with its driver assignments in position order.
// The row is locked for the remainder of the transaction, so two transitions
// racing over the same move serialize: the loser re-reads the committed status
// and its transition fails instead of silently overwriting.
func (r *GormMoveRepository) Get(ctx context.Context, id kernel.UUID) (*move.Move, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MoveDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Drivers", orderedByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("move", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every move in a non-terminal status.
func (r *GormMoveRepository) GetAllActive(ctx context.Context) ([]*move.Move, error) {
	var dtos []MoveDTO
	if err := r.db.WithContext(ctx).
		Preload("Drivers", orderedByPosition).
		Where("status IN ?", activeStatuses()).
		Order("scheduled_date").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllOverdue retrieves every active move scheduled strictly before the
// given moment. The overdue sweep job calls this on its tick.
func (r *GormMoveRepository) GetAllOverdue(ctx context.Context, before time.Time) ([]*move.Move, error) {
	if before.IsZero() {
		return nil, errs.NewValueIsRequiredError("before")
	}

	var dtos []MoveDTO
	if err := r.db.WithContext(ctx).
		Preload("Drivers", orderedByPosition).
		Where("status IN ? AND scheduled_date < ?", activeStatuses(), before).
		Order("scheduled_date").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []MoveDTO) ([]*move.Move, error) {
	moves := make([]*move.Move, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func activeStatuses() []int {
	return []int{int(move.Pending), int(move.Assigned), int(move.InProgress)}
}

func orderedByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("move_drivers.position")
}
