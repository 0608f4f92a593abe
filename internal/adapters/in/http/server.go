// Package http exposes the dispatch core over a REST API built on echo.
// Handlers translate between JSON payloads and application commands/queries
// and map the error taxonomy onto HTTP status codes: validation failures are
// 400, missing objects 404, lost claims and duplicate matches 409, illegal
// lifecycle transitions 422 and upstream provider failures 502.
package http

import (
	"net/http"
	"time"

	"swapdispatch/internal/core/application/usecases/commands"
	"swapdispatch/internal/core/application/usecases/queries"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/payment"
	"swapdispatch/internal/core/domain/services"
	"swapdispatch/internal/core/ports"
	"swapdispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerTrailerHandler        commands.RegisterTrailerCommandHandler
	registerDriverHandler         commands.RegisterDriverCommandHandler
	createMoveHandler             commands.CreateMoveCommandHandler
	assignMoveResourcesHandler    commands.AssignMoveResourcesCommandHandler
	startMoveHandler              commands.StartMoveCommandHandler
	completeMoveHandler           commands.CompleteMoveCommandHandler
	cancelMoveHandler             commands.CancelMoveCommandHandler
	ingestRateConfirmationHandler commands.IngestRateConfirmationCommandHandler
	matchRateConfirmationHandler  commands.MatchRateConfirmationCommandHandler

	// Query handlers
	availableTrailersHandler        queries.GetAvailableTrailersQueryHandler
	availableDriversHandler         queries.GetAvailableDriversQueryHandler
	unmatchedConfirmationsHandler   queries.GetUnmatchedRateConfirmationsQueryHandler
	movesWithoutConfirmationHandler queries.GetMovesWithoutConfirmationQueryHandler
	overdueMovesHandler             queries.GetOverdueMovesQueryHandler
	movePaymentHandler              queries.GetMovePaymentQueryHandler

	// Domain collaborators for the estimate and payment endpoints
	calculator       services.Calculator
	classifier       services.Classifier
	distanceProvider ports.DistanceProvider
	rateProvider     ports.RateProvider
}

// ServerDeps carries everything a Server needs. Grouped in a struct because
// the dispatch API fronts nine commands and six queries.
type ServerDeps struct {
	RegisterTrailerHandler        commands.RegisterTrailerCommandHandler
	RegisterDriverHandler         commands.RegisterDriverCommandHandler
	CreateMoveHandler             commands.CreateMoveCommandHandler
	AssignMoveResourcesHandler    commands.AssignMoveResourcesCommandHandler
	StartMoveHandler              commands.StartMoveCommandHandler
	CompleteMoveHandler           commands.CompleteMoveCommandHandler
	CancelMoveHandler             commands.CancelMoveCommandHandler
	IngestRateConfirmationHandler commands.IngestRateConfirmationCommandHandler
	MatchRateConfirmationHandler  commands.MatchRateConfirmationCommandHandler

	AvailableTrailersHandler        queries.GetAvailableTrailersQueryHandler
	AvailableDriversHandler         queries.GetAvailableDriversQueryHandler
	UnmatchedConfirmationsHandler   queries.GetUnmatchedRateConfirmationsQueryHandler
	MovesWithoutConfirmationHandler queries.GetMovesWithoutConfirmationQueryHandler
	OverdueMovesHandler             queries.GetOverdueMovesQueryHandler
	MovePaymentHandler              queries.GetMovePaymentQueryHandler

	Calculator       services.Calculator
	Classifier       services.Classifier
	DistanceProvider ports.DistanceProvider
	RateProvider     ports.RateProvider
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		registerTrailerHandler:          deps.RegisterTrailerHandler,
		registerDriverHandler:           deps.RegisterDriverHandler,
		createMoveHandler:               deps.CreateMoveHandler,
		assignMoveResourcesHandler:      deps.AssignMoveResourcesHandler,
		startMoveHandler:                deps.StartMoveHandler,
		completeMoveHandler:             deps.CompleteMoveHandler,
		cancelMoveHandler:               deps.CancelMoveHandler,
		ingestRateConfirmationHandler:   deps.IngestRateConfirmationHandler,
		matchRateConfirmationHandler:    deps.MatchRateConfirmationHandler,
		availableTrailersHandler:        deps.AvailableTrailersHandler,
		availableDriversHandler:         deps.AvailableDriversHandler,
		unmatchedConfirmationsHandler:   deps.UnmatchedConfirmationsHandler,
		movesWithoutConfirmationHandler: deps.MovesWithoutConfirmationHandler,
		overdueMovesHandler:             deps.OverdueMovesHandler,
		movePaymentHandler:              deps.MovePaymentHandler,
		calculator:                      deps.Calculator,
		classifier:                      deps.Classifier,
		distanceProvider:                deps.DistanceProvider,
		rateProvider:                    deps.RateProvider,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/trailers", s.RegisterTrailer)
	api.GET("/trailers/available", s.GetAvailableTrailers)
	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers/available", s.GetAvailableDrivers)

	api.POST("/moves", s.CreateMove)
	api.POST("/moves/:id/resources", s.AssignMoveResources)
	api.POST("/moves/:id/start", s.StartMove)
	api.POST("/moves/:id/complete", s.CompleteMove)
	api.POST("/moves/:id/cancel", s.CancelMove)
	api.GET("/moves/overdue", s.GetOverdueMoves)
	api.GET("/moves/unconfirmed", s.GetMovesWithoutConfirmation)
	api.GET("/moves/:id/payment", s.GetMovePayment)

	api.POST("/estimates", s.EstimatePayment)

	api.POST("/rate-confirmations", s.IngestRateConfirmation)
	api.GET("/rate-confirmations/unmatched", s.GetUnmatchedRateConfirmations)
	api.POST("/rate-confirmations/:id/match", s.MatchRateConfirmation)
}

// RegisterTrailer handles POST /api/v1/trailers - adds a trailer to the pool.
func (s *Server) RegisterTrailer(ctx echo.Context) error {
	var body NewTrailer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trailerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterTrailerCommand(trailerID, body.Number, body.Location)
	if err != nil {
		return badRequest(ctx, "Invalid trailer data: "+err.Error())
	}

	if handleErr := s.registerTrailerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: trailerID.Bytes()})
}

// GetAvailableTrailers handles GET /api/v1/trailers/available.
func (s *Server) GetAvailableTrailers(ctx echo.Context) error {
	query := queries.NewGetAvailableTrailersQuery()

	trailers, err := s.availableTrailersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Trailer, len(trailers))
	for i, t := range trailers {
		response[i] = Trailer{
			Id:       t.ID.Bytes(),
			Number:   t.Number,
			Location: t.Location.Name(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterDriver handles POST /api/v1/drivers - adds a driver to the pool.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, body.Contractor)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if handleErr := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: driverID.Bytes()})
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	query := queries.NewGetAvailableDriversQuery()

	drivers, err := s.availableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			Id:         d.ID.Bytes(),
			Name:       d.Name,
			Contractor: d.Contractor,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMove handles POST /api/v1/moves - posts a new swap run.
func (s *Server) CreateMove(ctx echo.Context) error {
	var body NewMove
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	scheduledDate, err := time.Parse(time.DateOnly, body.ScheduledDate)
	if err != nil {
		return badRequest(ctx, "Invalid scheduled date, want YYYY-MM-DD")
	}

	resources, err := parseMoveResources(body.Resources)
	if err != nil {
		return badRequest(ctx, "Invalid resource ids")
	}

	moveID := kernel.NewUUID()
	cmd, err := commands.NewCreateMoveCommand(moveID, body.Origin, body.Destination, scheduledDate, resources)
	if err != nil {
		return badRequest(ctx, "Invalid move data: "+err.Error())
	}

	if handleErr := s.createMoveHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: moveID.Bytes()})
}

// AssignMoveResources handles POST /api/v1/moves/:id/resources - claims a
// trailer pair and driver set for a pending move.
func (s *Server) AssignMoveResources(ctx echo.Context) error {
	moveID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid move id")
	}

	var body AssignResources
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newTrailerID, err := kernel.UUIDFromString(body.NewTrailerId)
	if err != nil {
		return badRequest(ctx, "Invalid new trailer id")
	}
	oldTrailerID, err := kernel.UUIDFromString(body.OldTrailerId)
	if err != nil {
		return badRequest(ctx, "Invalid old trailer id")
	}

	driverIDs := make([]kernel.UUID, 0, len(body.DriverIds))
	for _, raw := range body.DriverIds {
		driverID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid driver id")
		}
		driverIDs = append(driverIDs, driverID)
	}

	cmd, err := commands.NewAssignMoveResourcesCommand(moveID, newTrailerID, oldTrailerID, driverIDs)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if handleErr := s.assignMoveResourcesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartMove handles POST /api/v1/moves/:id/start.
func (s *Server) StartMove(ctx echo.Context) error {
	moveID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid move id")
	}

	cmd, err := commands.NewStartMoveCommand(moveID)
	if err != nil {
		return badRequest(ctx, "Invalid move id: "+err.Error())
	}

	if handleErr := s.startMoveHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteMove handles POST /api/v1/moves/:id/complete.
// The payout mode is part of the request; it is never inferred from amounts.
func (s *Server) CompleteMove(ctx echo.Context) error {
	moveID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid move id")
	}

	var body CompleteMove
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mode, err := parseMode(body.Mode)
	if err != nil {
		return badRequest(ctx, "Invalid payout mode, want ShareOfGross or FullNet")
	}

	var distanceOverride *decimal.Decimal
	if body.Distance != "" {
		distance, parseErr := decimal.NewFromString(body.Distance)
		if parseErr != nil {
			return badRequest(ctx, "Invalid distance")
		}
		distanceOverride = &distance
	}

	cmd, err := commands.NewCompleteMoveCommand(moveID, mode, distanceOverride)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeMoveHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelMove handles POST /api/v1/moves/:id/cancel.
func (s *Server) CancelMove(ctx echo.Context) error {
	moveID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid move id")
	}

	var body CancelMove
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelMoveCommand(moveID, body.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if handleErr := s.cancelMoveHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOverdueMoves handles GET /api/v1/moves/overdue.
func (s *Server) GetOverdueMoves(ctx echo.Context) error {
	query, err := queries.NewGetOverdueMovesQuery(time.Now().UTC())
	if err != nil {
		return errorResponse(ctx, err)
	}

	moves, err := s.overdueMovesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Move, len(moves))
	for i, m := range moves {
		response[i] = Move{
			Id:            m.ID.Bytes(),
			Origin:        m.Origin.Name(),
			Destination:   m.Destination.Name(),
			ScheduledDate: m.ScheduledDate.Format(time.DateOnly),
			Status:        m.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMovesWithoutConfirmation handles GET /api/v1/moves/unconfirmed -
// completed moves still waiting on broker paperwork.
func (s *Server) GetMovesWithoutConfirmation(ctx echo.Context) error {
	query := queries.NewGetMovesWithoutConfirmationQuery()

	moves, err := s.movesWithoutConfirmationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UnconfirmedMove, len(moves))
	for i, m := range moves {
		response[i] = UnconfirmedMove{
			Id:            m.ID.Bytes(),
			Origin:        m.Origin.Name(),
			Destination:   m.Destination.Name(),
			ScheduledDate: m.ScheduledDate.Format(time.DateOnly),
			Distance:      m.Distance.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMovePayment handles GET /api/v1/moves/:id/payment - the settlement view
// of a completed move, with the reconciliation verdict once paperwork landed.
func (s *Server) GetMovePayment(ctx echo.Context) error {
	moveID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid move id")
	}

	query, err := queries.NewGetMovePaymentQuery(moveID)
	if err != nil {
		return badRequest(ctx, "Invalid move id: "+err.Error())
	}

	paymentView, err := s.movePaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := MovePayment{
		MoveId:       paymentView.MoveID.Bytes(),
		Distance:     paymentView.Distance.String(),
		Gross:        paymentView.Gross.String(),
		FactoringFee: paymentView.FactoringFee.String(),
		ServiceFee:   paymentView.ServiceFee.String(),
		Net:          paymentView.Net.String(),
	}

	if paymentView.ReportedDeltaPct != nil {
		deltaPct := paymentView.ReportedDeltaPct.String()
		response.ReportedDeltaPct = &deltaPct
		classification := s.classifier.Classify(*paymentView.ReportedDeltaPct).String()
		response.Classification = &classification
	}
	if paymentView.ReportedDelta != nil {
		delta := paymentView.ReportedDelta.String()
		response.ReportedDelta = &delta
	}

	response.Shares = make([]PaymentShare, len(paymentView.Shares))
	for i, share := range paymentView.Shares {
		response.Shares[i] = PaymentShare{
			DriverId:   share.DriverID.Bytes(),
			DriverName: share.DriverName,
			Net:        share.Net.String(),
			ServiceFee: share.ServiceFee.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EstimatePayment handles POST /api/v1/estimates - prices a hypothetical move
// without touching any stored state. The distance may be given directly or
// resolved from the lane; the tariff always comes from the rate provider.
func (s *Server) EstimatePayment(ctx echo.Context) error {
	var body EstimateRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	mode, err := parseMode(body.Mode)
	if err != nil {
		return badRequest(ctx, "Invalid payout mode, want ShareOfGross or FullNet")
	}

	driverIDs := make([]kernel.UUID, 0, len(body.DriverIds))
	for _, raw := range body.DriverIds {
		driverID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "Invalid driver id")
		}
		driverIDs = append(driverIDs, driverID)
	}

	distance, err := s.resolveDistance(ctx, body)
	if err != nil {
		return errorResponse(ctx, err)
	}

	tariff, err := s.rateProvider.CurrentTariff(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err)
	}

	breakdown, err := s.calculator.Estimate(distance, tariff.RatePerUnit, tariff.ServiceFee, driverIDs, mode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := Estimate{
		Distance:     distance.String(),
		RatePerUnit:  tariff.RatePerUnit.String(),
		Gross:        breakdown.Gross().String(),
		FactoringFee: breakdown.FactoringFee().String(),
		ServiceFee:   breakdown.ServiceFee().String(),
		Net:          breakdown.Net().String(),
	}
	for _, share := range breakdown.Shares() {
		response.Shares = append(response.Shares, EstimateShare{
			DriverId:   share.DriverID.Bytes(),
			Net:        share.Net.String(),
			ServiceFee: share.ServiceFee.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// IngestRateConfirmation handles POST /api/v1/rate-confirmations.
func (s *Server) IngestRateConfirmation(ctx echo.Context) error {
	var body NewRateConfirmation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	reportedDistance, err := decimal.NewFromString(body.ReportedDistance)
	if err != nil {
		return badRequest(ctx, "Invalid reported distance")
	}
	reportedRate, err := decimal.NewFromString(body.ReportedRate)
	if err != nil {
		return badRequest(ctx, "Invalid reported rate")
	}
	reportedTotal, err := decimal.NewFromString(body.ReportedTotal)
	if err != nil {
		return badRequest(ctx, "Invalid reported total")
	}

	confirmationID := kernel.NewUUID()
	cmd, err := commands.NewIngestRateConfirmationCommand(
		confirmationID, body.Reference, reportedDistance, reportedRate, reportedTotal, body.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid rate confirmation data: "+err.Error())
	}

	if handleErr := s.ingestRateConfirmationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: confirmationID.Bytes()})
}

// GetUnmatchedRateConfirmations handles GET /api/v1/rate-confirmations/unmatched.
func (s *Server) GetUnmatchedRateConfirmations(ctx echo.Context) error {
	query := queries.NewGetUnmatchedRateConfirmationsQuery()

	confirmations, err := s.unmatchedConfirmationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]RateConfirmation, len(confirmations))
	for i, rc := range confirmations {
		response[i] = RateConfirmation{
			Id:               rc.ID.Bytes(),
			Reference:        rc.Reference,
			ReportedDistance: rc.ReportedDistance.String(),
			ReportedRate:     rc.ReportedRate.String(),
			ReportedTotal:    rc.ReportedTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// MatchRateConfirmation handles POST /api/v1/rate-confirmations/:id/match.
func (s *Server) MatchRateConfirmation(ctx echo.Context) error {
	confirmationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid rate confirmation id")
	}

	var body MatchRateConfirmation
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	moveID, err := kernel.UUIDFromString(body.MoveId)
	if err != nil {
		return badRequest(ctx, "Invalid move id")
	}

	cmd, err := commands.NewMatchRateConfirmationCommand(confirmationID, moveID, body.MatchedBy)
	if err != nil {
		return badRequest(ctx, "Invalid match data: "+err.Error())
	}

	if handleErr := s.matchRateConfirmationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) resolveDistance(ctx echo.Context, body EstimateRequest) (decimal.Decimal, error) {
	if body.Distance != "" {
		distance, err := decimal.NewFromString(body.Distance)
		if err != nil {
			return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("distance", err)
		}
		return distance, nil
	}

	origin, err := kernel.NewLocation(body.Origin)
	if err != nil {
		return decimal.Zero, err
	}
	destination, err := kernel.NewLocation(body.Destination)
	if err != nil {
		return decimal.Zero, err
	}

	return s.distanceProvider.Distance(ctx.Request().Context(), origin, destination)
}

func parseMode(raw string) (payment.Mode, error) {
	switch raw {
	case "ShareOfGross":
		return payment.ShareOfGross, nil
	case "FullNet":
		return payment.FullNet, nil
	default:
		return payment.ModeUnknown, errs.NewValueIsInvalidError("mode")
	}
}

func parseMoveResources(body *AssignResources) (*commands.MoveResources, error) {
	if body == nil {
		return nil, nil
	}

	newTrailerID, err := kernel.UUIDFromString(body.NewTrailerId)
	if err != nil {
		return nil, err
	}
	oldTrailerID, err := kernel.UUIDFromString(body.OldTrailerId)
	if err != nil {
		return nil, err
	}

	driverIDs := make([]kernel.UUID, 0, len(body.DriverIds))
	for _, raw := range body.DriverIds {
		driverID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		driverIDs = append(driverIDs, driverID)
	}

	return &commands.MoveResources{
		NewTrailerID: newTrailerID,
		OldTrailerID: oldTrailerID,
		DriverIDs:    driverIDs,
	}, nil
}
