package queries

import (
	"context"
	"database/sql"
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMovePaymentQueryHandler retrieves the payment breakdown of a completed
// move. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetMovePaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetMovePaymentQueryHandler creates a handler for payment breakdown queries.
// Requires a GORM database connection for query execution.
func NewGetMovePaymentQueryHandler(db *gorm.DB) GetMovePaymentQueryHandler {
	return GetMovePaymentQueryHandler{db: db}
}

// Handle executes the query to retrieve the payment breakdown of one move.
// Only completed moves carry payment figures. Returns ObjectNotFoundError when
// the move does not exist or has not been paid out yet. Driver shares are
// returned in assignment order, which is also the order the rounding remainder
// was applied in.
func (h GetMovePaymentQueryHandler) Handle(
	ctx context.Context,
	query GetMovePaymentQuery,
) (GetMovePaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMovePaymentQueryResponse{}, err
	}

	var response GetMovePaymentQueryResponse
	var distance, gross, factoringFee, serviceFee, net decimal.NullDecimal
	var reportedDelta, reportedDeltaPct decimal.NullDecimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			distance,
			gross,
			factoring_fee,
			service_fee,
			net,
			reported_delta,
			reported_delta_pct
		FROM moves
		WHERE id = ? AND status = ?
	`, query.MoveID().String(), move.Completed).Row()

	err := row.Scan(&distance, &gross, &factoringFee, &serviceFee, &net, &reportedDelta, &reportedDeltaPct)
	if errors.Is(err, sql.ErrNoRows) {
		return GetMovePaymentQueryResponse{}, errs.NewObjectNotFoundError("move payment", query.MoveID())
	}
	if err != nil {
		return GetMovePaymentQueryResponse{}, err
	}
	if !net.Valid {
		return GetMovePaymentQueryResponse{}, errs.NewObjectNotFoundError("move payment", query.MoveID())
	}

	response.MoveID = query.MoveID()
	response.Distance = distance.Decimal
	response.Gross = gross.Decimal
	response.FactoringFee = factoringFee.Decimal
	response.ServiceFee = serviceFee.Decimal
	response.Net = net.Decimal
	if reportedDelta.Valid {
		delta := reportedDelta.Decimal
		response.ReportedDelta = &delta
	}
	if reportedDeltaPct.Valid {
		deltaPct := reportedDeltaPct.Decimal
		response.ReportedDeltaPct = &deltaPct
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			md.driver_id,
			d.name,
			md.net,
			md.service_fee
		FROM move_drivers md
		JOIN drivers d ON d.id = md.driver_id
		WHERE md.move_id = ?
		ORDER BY md.position
	`, query.MoveID().String()).Rows()
	if err != nil {
		return GetMovePaymentQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var share GetMovePaymentQueryShare
		var id uuid.UUID
		var shareNet, shareServiceFee decimal.NullDecimal

		err = rows.Scan(
			&id,
			&share.DriverName,
			&shareNet,
			&shareServiceFee,
		)
		if err != nil {
			return GetMovePaymentQueryResponse{}, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetMovePaymentQueryResponse{}, idErr
		}
		share.DriverID = driverID
		share.Net = shareNet.Decimal
		share.ServiceFee = shareServiceFee.Decimal
		response.Shares = append(response.Shares, share)
	}

	if err = rows.Err(); err != nil {
		return GetMovePaymentQueryResponse{}, err
	}

	return response, nil
}
