package commands_test

import (
	"context"
	"time"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/model/rateconf"
	"swapdispatch/internal/core/domain/model/trailer"
	"swapdispatch/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockTrailerRepository struct{ mock.Mock }

func (m *MockTrailerRepository) Add(ctx context.Context, t *trailer.Trailer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrailerRepository) Update(ctx context.Context, t *trailer.Trailer) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrailerRepository) Get(ctx context.Context, id kernel.UUID) (*trailer.Trailer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trailer.Trailer), args.Error(1)
}

func (m *MockTrailerRepository) GetByNumber(ctx context.Context, number string) (*trailer.Trailer, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trailer.Trailer), args.Error(1)
}

func (m *MockTrailerRepository) GetAllAvailable(ctx context.Context) ([]*trailer.Trailer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trailer.Trailer), args.Error(1)
}

func (m *MockTrailerRepository) Claim(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockTrailerRepository) Release(ctx context.Context, ids []kernel.UUID, at *kernel.Location) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllAvailable(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Claim(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockDriverRepository) Release(ctx context.Context, ids []kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockMoveRepository struct{ mock.Mock }

func (m *MockMoveRepository) Add(ctx context.Context, mv *move.Move) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMoveRepository) Update(ctx context.Context, mv *move.Move) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMoveRepository) Get(ctx context.Context, id kernel.UUID) (*move.Move, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*move.Move), args.Error(1)
}

func (m *MockMoveRepository) GetAllActive(ctx context.Context) ([]*move.Move, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*move.Move), args.Error(1)
}

func (m *MockMoveRepository) GetAllOverdue(ctx context.Context, before time.Time) ([]*move.Move, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*move.Move), args.Error(1)
}

type MockRateConfirmationRepository struct{ mock.Mock }

func (m *MockRateConfirmationRepository) Add(ctx context.Context, rc *rateconf.RateConfirmation) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockRateConfirmationRepository) Update(ctx context.Context, rc *rateconf.RateConfirmation) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockRateConfirmationRepository) Get(ctx context.Context, id kernel.UUID) (*rateconf.RateConfirmation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rateconf.RateConfirmation), args.Error(1)
}

func (m *MockRateConfirmationRepository) GetAllUnmatched(ctx context.Context) ([]*rateconf.RateConfirmation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rateconf.RateConfirmation), args.Error(1)
}

type MockResourceUoW struct{ mock.Mock }

func (m *MockResourceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResourceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResourceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockResourceUoW) TrailerRepository() ports.TrailerRepository {
	args := m.Called()
	return args.Get(0).(ports.TrailerRepository)
}

func (m *MockResourceUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockResourceUoW) MoveRepository() ports.MoveRepository {
	args := m.Called()
	return args.Get(0).(ports.MoveRepository)
}

type MockResourceUoWFactory struct{ mock.Mock }

func (m *MockResourceUoWFactory) Create() commands.ResourceUoW {
	args := m.Called()
	return args.Get(0).(commands.ResourceUoW)
}

type MockRateConfirmationUoW struct{ mock.Mock }

func (m *MockRateConfirmationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRateConfirmationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRateConfirmationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRateConfirmationUoW) RateConfirmationRepository() ports.RateConfirmationRepository {
	args := m.Called()
	return args.Get(0).(ports.RateConfirmationRepository)
}

type MockRateConfirmationUoWFactory struct{ mock.Mock }

func (m *MockRateConfirmationUoWFactory) Create() commands.RateConfirmationUoW {
	args := m.Called()
	return args.Get(0).(commands.RateConfirmationUoW)
}

type MockReconciliationUoW struct{ mock.Mock }

func (m *MockReconciliationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconciliationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconciliationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReconciliationUoW) MoveRepository() ports.MoveRepository {
	args := m.Called()
	return args.Get(0).(ports.MoveRepository)
}

func (m *MockReconciliationUoW) RateConfirmationRepository() ports.RateConfirmationRepository {
	args := m.Called()
	return args.Get(0).(ports.RateConfirmationRepository)
}

type MockReconciliationUoWFactory struct{ mock.Mock }

func (m *MockReconciliationUoWFactory) Create() commands.ReconciliationUoW {
	args := m.Called()
	return args.Get(0).(commands.ReconciliationUoW)
}

type MockDistanceProvider struct{ mock.Mock }

func (m *MockDistanceProvider) Distance(ctx context.Context, from, to kernel.Location) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) CurrentTariff(ctx context.Context) (ports.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Tariff), args.Error(1)
}
