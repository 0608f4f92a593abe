package cmd

import (
	"log/slog"
	"os"

	"swapdispatch/internal/adapters/out/geo"
	"swapdispatch/internal/adapters/out/postgres"
	"swapdispatch/internal/adapters/out/rates"
	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/application/usecases/queries"
	"swapdispatch/internal/core/domain/services"
	"swapdispatch/internal/core/ports"
	"swapdispatch/internal/jobs"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	distanceProvider ports.DistanceProvider
	rateProvider     ports.RateProvider
	calculator       services.Calculator
	classifier       services.Classifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	rateProvider, err := rates.NewStaticRateProvider(
		mustDecimal(config.TariffRate),
		mustDecimal(config.TariffServiceFee),
	)
	if err != nil {
		log.Fatalf("Invalid tariff configuration: %v", err)
	}

	routeTable, err := geo.NewRouteTableProvider(knownLanes())
	if err != nil {
		log.Fatalf("Invalid lane table: %v", err)
	}

	calculator, err := services.NewCalculator(services.DefaultCalculatorConfig())
	if err != nil {
		log.Fatalf("Invalid calculator configuration: %v", err)
	}

	classifier, err := services.NewClassifier(services.DefaultClassifierConfig())
	if err != nil {
		log.Fatalf("Invalid classifier configuration: %v", err)
	}

	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		distanceProvider: geo.NewCachedDistanceProvider(gormDB, routeTable),
		rateProvider:     rateProvider,
		calculator:       calculator,
		classifier:       classifier,
	}
}

func (c *CompositionRoot) DistanceProvider() ports.DistanceProvider {
	return c.distanceProvider
}

func (c *CompositionRoot) RateProvider() ports.RateProvider {
	return c.rateProvider
}

func (c *CompositionRoot) Calculator() services.Calculator {
	return c.calculator
}

func (c *CompositionRoot) Classifier() services.Classifier {
	return c.classifier
}

func (c *CompositionRoot) CreateRegisterTrailerCommandHandler() commands.RegisterTrailerCommandHandler {
	var f commands.TrailerUoWFactory = FuncTrailerUoWFactory(func() commands.TrailerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTrailerCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMoveCommandHandler() commands.CreateMoveCommandHandler {
	return commands.NewCreateMoveCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateAssignMoveResourcesCommandHandler() commands.AssignMoveResourcesCommandHandler {
	return commands.NewAssignMoveResourcesCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateStartMoveCommandHandler() commands.StartMoveCommandHandler {
	return commands.NewStartMoveCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateCompleteMoveCommandHandler() commands.CompleteMoveCommandHandler {
	return commands.NewCompleteMoveCommandHandler(
		c.resourceUoWFactory(),
		c.distanceProvider,
		c.rateProvider,
		c.calculator,
	)
}

func (c *CompositionRoot) CreateCancelMoveCommandHandler() commands.CancelMoveCommandHandler {
	return commands.NewCancelMoveCommandHandler(c.resourceUoWFactory())
}

func (c *CompositionRoot) CreateIngestRateConfirmationCommandHandler() commands.IngestRateConfirmationCommandHandler {
	var f commands.RateConfirmationUoWFactory = FuncRateConfirmationUoWFactory(func() commands.RateConfirmationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIngestRateConfirmationCommandHandler(f)
}

func (c *CompositionRoot) CreateMatchRateConfirmationCommandHandler() commands.MatchRateConfirmationCommandHandler {
	var f commands.ReconciliationUoWFactory = FuncReconciliationUoWFactory(func() commands.ReconciliationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMatchRateConfirmationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableTrailersQueryHandler() queries.GetAvailableTrailersQueryHandler {
	return queries.NewGetAvailableTrailersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnmatchedRateConfirmationsQueryHandler() queries.GetUnmatchedRateConfirmationsQueryHandler {
	return queries.NewGetUnmatchedRateConfirmationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMovesWithoutConfirmationQueryHandler() queries.GetMovesWithoutConfirmationQueryHandler {
	return queries.NewGetMovesWithoutConfirmationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueMovesQueryHandler() queries.GetOverdueMovesQueryHandler {
	return queries.NewGetOverdueMovesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMovePaymentQueryHandler() queries.GetMovePaymentQueryHandler {
	return queries.NewGetMovePaymentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return jobs.NewJobManager(c.CreateGetOverdueMovesQueryHandler(), logger)
}

func (c *CompositionRoot) resourceUoWFactory() commands.ResourceUoWFactory {
	return FuncResourceUoWFactory(func() commands.ResourceUoW {
		return c.uowFactory.Create()
	})
}

func mustDecimal(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("Invalid decimal configuration value %q: %v", raw, err)
	}
	return value
}

// knownLanes is the seed routing table for the client's regular swap lanes.
// The cache table on top of it picks up any lanes added at runtime.
func knownLanes() []geo.Lane {
	return []geo.Lane{
		{From: "Dallas", To: "Houston", Distance: decimal.NewFromInt(240)},
		{From: "Dallas", To: "San Antonio", Distance: decimal.NewFromInt(274)},
		{From: "Dallas", To: "Oklahoma City", Distance: decimal.NewFromInt(206)},
		{From: "Houston", To: "San Antonio", Distance: decimal.NewFromInt(197)},
		{From: "Houston", To: "New Orleans", Distance: decimal.NewFromInt(348)},
		{From: "Dallas", To: "Memphis", Distance: decimal.NewFromInt(452)},
		{From: "Memphis", To: "Nashville", Distance: decimal.NewFromInt(212)},
		{From: "Oklahoma City", To: "Wichita", Distance: decimal.NewFromInt(161)},
	}
}

type FuncTrailerUoWFactory func() commands.TrailerUoW

func (f FuncTrailerUoWFactory) Create() commands.TrailerUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncRateConfirmationUoWFactory func() commands.RateConfirmationUoW

func (f FuncRateConfirmationUoWFactory) Create() commands.RateConfirmationUoW {
	return f()
}

type FuncResourceUoWFactory func() commands.ResourceUoW

func (f FuncResourceUoWFactory) Create() commands.ResourceUoW {
	return f()
}

type FuncReconciliationUoWFactory func() commands.ReconciliationUoW

func (f FuncReconciliationUoWFactory) Create() commands.ReconciliationUoW {
	return f()
}
