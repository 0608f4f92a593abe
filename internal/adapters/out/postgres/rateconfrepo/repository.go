package rateconfrepo

import (
	"context"
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/rateconf"
	"swapdispatch/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

// GormRateConfirmationRepository implements RateConfirmationRepository using GORM.
type GormRateConfirmationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRateConfirmationRepository creates a new GORM rate confirmation repository.
func NewGormRateConfirmationRepository(db *gorm.DB, tracker aggregateTracker) *GormRateConfirmationRepository {
	return &GormRateConfirmationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly ingested confirmation to the database.
func (r *GormRateConfirmationRepository) Add(ctx context.Context, aggregate *rateconf.RateConfirmation) error {
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

// Update saves an existing confirmation to the database.
// The unique index on matched_to_move_id is the last line of defense against
// two confirmations matching the same move; a violation surfaces as
// AlreadyMatched so the caller treats it like any other lost race.
func (r *GormRateConfirmationRepository) Update(ctx context.Context, aggregate *rateconf.RateConfirmation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			moveID := ""
			if matched := aggregate.MatchedTo(); matched != nil {
				moveID = matched.String()
			}
			return errs.NewAlreadyMatchedErrorWithCause(aggregate.ID().String(), moveID, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a confirmation by ID.
func (r *GormRateConfirmationRepository) Get(ctx context.Context, id kernel.UUID) (*rateconf.RateConfirmation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RateConfirmationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rate confirmation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnmatched retrieves every confirmation not yet linked to a move.
func (r *GormRateConfirmationRepository) GetAllUnmatched(ctx context.Context) ([]*rateconf.RateConfirmation, error) {
	var dtos []RateConfirmationDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", int(rateconf.Unmatched)).
		Order("reference").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	confirmations := make([]*rateconf.RateConfirmation, 0, len(dtos))
	for _, dto := range dtos {
		rc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		confirmations = append(confirmations, rc)
	}

	return confirmations, nil
}

// isUniqueViolation reports whether err is a unique constraint breach,
// either as the raw driver error or as GORM's translated form.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
