package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"swapdispatch/cmd"
	httpadapter "swapdispatch/internal/adapters/in/http"
	"swapdispatch/internal/adapters/out/geo"
	"swapdispatch/internal/adapters/out/postgres/driverrepo"
	"swapdispatch/internal/adapters/out/postgres/moverepo"
	"swapdispatch/internal/adapters/out/postgres/rateconfrepo"
	"swapdispatch/internal/adapters/out/postgres/trailerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		TariffRate:       goDotEnvVariable("TARIFF_RATE"),
		TariffServiceFee: goDotEnvVariable("TARIFF_SERVICE_FEE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// mustOpenDB opens the database through the lib/pq driver and hands the
// connection to gorm, so driver-level errors keep their pq type.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&trailerrepo.TrailerDTO{},
		&driverrepo.DriverDTO{},
		&moverepo.MoveDTO{},
		&moverepo.MoveDriverDTO{},
		&rateconfrepo.RateConfirmationDTO{},
		&geo.MileageDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.ServerDeps{
		RegisterTrailerHandler:        app.CreateRegisterTrailerCommandHandler(),
		RegisterDriverHandler:         app.CreateRegisterDriverCommandHandler(),
		CreateMoveHandler:             app.CreateCreateMoveCommandHandler(),
		AssignMoveResourcesHandler:    app.CreateAssignMoveResourcesCommandHandler(),
		StartMoveHandler:              app.CreateStartMoveCommandHandler(),
		CompleteMoveHandler:           app.CreateCompleteMoveCommandHandler(),
		CancelMoveHandler:             app.CreateCancelMoveCommandHandler(),
		IngestRateConfirmationHandler: app.CreateIngestRateConfirmationCommandHandler(),
		MatchRateConfirmationHandler:  app.CreateMatchRateConfirmationCommandHandler(),

		AvailableTrailersHandler:        app.CreateGetAvailableTrailersQueryHandler(),
		AvailableDriversHandler:         app.CreateGetAvailableDriversQueryHandler(),
		UnmatchedConfirmationsHandler:   app.CreateGetUnmatchedRateConfirmationsQueryHandler(),
		MovesWithoutConfirmationHandler: app.CreateGetMovesWithoutConfirmationQueryHandler(),
		OverdueMovesHandler:             app.CreateGetOverdueMovesQueryHandler(),
		MovePaymentHandler:              app.CreateGetMovePaymentQueryHandler(),

		Calculator:       app.Calculator(),
		Classifier:       app.Classifier(),
		DistanceProvider: app.DistanceProvider(),
		RateProvider:     app.RateProvider(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
