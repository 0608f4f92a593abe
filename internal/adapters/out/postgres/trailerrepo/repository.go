package trailerrepo

import (
	"context"
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/trailer"
	"swapdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTrailerRepository implements TrailerRepository using GORM.
type GormTrailerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrailerRepository creates a new GORM trailer repository.
func NewGormTrailerRepository(db *gorm.DB, tracker aggregateTracker) *GormTrailerRepository {
	return &GormTrailerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trailer to the database.
func (r *GormTrailerRepository) Add(ctx context.Context, aggregate *trailer.Trailer) error {
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

// Update saves an existing trailer to the database.
func (r *GormTrailerRepository) Update(ctx context.Context, aggregate *trailer.Trailer) error {
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

// Get retrieves a trailer by ID.
func (r *GormTrailerRepository) Get(ctx context.Context, id kernel.UUID) (*trailer.Trailer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrailerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trailer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a trailer by its unit number.
func (r *GormTrailerRepository) GetByNumber(ctx context.Context, number string) (*trailer.Trailer, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto TrailerDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trailer", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves every in-service trailer free to be claimed.
// Retired trailers never show up here even if their status reads Available.
func (r *GormTrailerRepository) GetAllAvailable(ctx context.Context) ([]*trailer.Trailer, error) {
	var dtos []TrailerDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND retired = FALSE", int(trailer.Available)).
		Order("number").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	trailers := make([]*trailer.Trailer, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trailers = append(trailers, t)
	}

	return trailers, nil
}

// Claim flips every listed trailer from Available to Claimed in one guarded
// UPDATE. The status predicate makes the claim a compare-and-set: a trailer
// another transaction grabbed first no longer matches, the affected row count
// comes up short and the whole claim fails with ResourceUnavailable. The
// caller runs this inside a unit of work and rolls back on failure.
func (r *GormTrailerRepository) Claim(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("trailer ids")
	}

	result := r.db.WithContext(ctx).
		Model(&TrailerDTO{}).
		Where("id IN ? AND status = ? AND retired = FALSE", rawIDs(ids), int(trailer.Available)).
		Update("status", int(trailer.Claimed))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewResourceUnavailableError("trailer", idStrings(ids))
	}

	return nil
}

// Release flips every listed trailer back to Available. A non-nil location
// also relocates them, which is how a completed move drops its trailers at
// the destination. Cancellation passes nil and leaves locations untouched.
func (r *GormTrailerRepository) Release(ctx context.Context, ids []kernel.UUID, at *kernel.Location) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("trailer ids")
	}

	updates := map[string]any{"status": int(trailer.Available)}
	if at != nil {
		updates["location"] = at.Name()
	}

	result := r.db.WithContext(ctx).
		Model(&TrailerDTO{}).
		Where("id IN ?", rawIDs(ids)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewObjectNotFoundError("trailer", idStrings(ids))
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
