package geo

import (
	"context"
	"errors"
	"strings"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/ports"
	"swapdispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MileageDTO is one cached lane distance. The lane key is normalized so the
// same pair of yards never occupies two rows.
type MileageDTO struct {
	Lane     string          `gorm:"type:varchar(255);primaryKey"`
	Distance decimal.Decimal `gorm:"type:decimal(10,1);not null"`
}

// TableName specifies the database table name for cached lane distances.
func (MileageDTO) TableName() string {
	return "mileage_cache"
}

// CachedDistanceProvider wraps another DistanceProvider with a database-backed
// mileage cache. A lane is resolved through the inner provider at most once;
// every later lookup is served from the cache. Cache write failures are
// swallowed: a distance the inner provider produced is always returned.
type CachedDistanceProvider struct {
	db    *gorm.DB
	inner ports.DistanceProvider
}

// NewCachedDistanceProvider creates a caching wrapper around inner.
func NewCachedDistanceProvider(db *gorm.DB, inner ports.DistanceProvider) *CachedDistanceProvider {
	return &CachedDistanceProvider{db: db, inner: inner}
}

// Distance returns the cached distance for the lane, falling through to the
// inner provider on a cache miss and storing the result.
func (p *CachedDistanceProvider) Distance(ctx context.Context, from, to kernel.Location) (decimal.Decimal, error) {
	if err := from.Validate(); err != nil {
		return decimal.Zero, err
	}
	if err := to.Validate(); err != nil {
		return decimal.Zero, err
	}

	lane := cacheLaneKey(from.Name(), to.Name())

	var cached MileageDTO
	err := p.db.WithContext(ctx).First(&cached, "lane = ?", lane).Error
	if err == nil {
		return cached.Distance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, errs.NewProviderUnavailableError("mileage cache", err)
	}

	distance, err := p.inner.Distance(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}

	// A concurrent resolver may have cached the lane first; the distance is
	// the same either way, so the conflict is ignored.
	p.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&MileageDTO{Lane: lane, Distance: distance})

	return distance, nil
}

// cacheLaneKey normalizes a lane so both directions share one cache row.
func cacheLaneKey(from, to string) string {
	a := strings.ToLower(from)
	b := strings.ToLower(to)
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

var _ ports.DistanceProvider = (*CachedDistanceProvider)(nil)
