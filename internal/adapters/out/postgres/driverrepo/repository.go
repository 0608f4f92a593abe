package driverrepo

import (
	"context"
	"errors"

	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
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

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every driver currently free to take a move.
func (r *GormDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(driver.Available)).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// Claim flips every listed driver from Available to OnTrip in one guarded
// UPDATE. The status predicate makes the claim a compare-and-set: if another
// transaction took any driver first the affected row count comes up short and
// the whole claim fails with ResourceUnavailable. The caller runs this inside
// a unit of work and rolls back on failure.
func (r *GormDriverRepository) Claim(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("driver ids")
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id IN ? AND status = ?", rawIDs(ids), int(driver.Available)).
		Update("status", int(driver.OnTrip))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewResourceUnavailableError("driver", idStrings(ids))
	}

	return nil
}

// Release flips every listed driver back to Available.
func (r *GormDriverRepository) Release(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("driver ids")
	}

	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id IN ?", rawIDs(ids)).
		Update("status", int(driver.Available))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewObjectNotFoundError("driver", idStrings(ids))
	}

	return nil
}

// rawIDs converts kernel identifiers to driver-level UUIDs for SQL binding.
func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

// idStrings renders identifiers for error reporting.
func idStrings(ids []kernel.UUID) []string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, id.String())
	}
	return strs
}
