package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrIngestRateConfirmationCommandIsNotConstructed = errors.New(
		"IngestRateConfirmationCommand must be created via NewIngestRateConfirmationCommand constructor",
	)
	ErrReferenceIsRequired       = errors.New("reference is required")
	ErrReportedDistanceIsInvalid = errors.New("reported distance must be greater than 0")
)

// IngestRateConfirmationCommand represents a request to record the client's
// paperwork for one load. The figures are stored as reported, never edited.
type IngestRateConfirmationCommand struct { //nolint:recvcheck //using for validation
	rateConfirmationID kernel.UUID
	reference          string
	reportedDistance   decimal.Decimal
	reportedRate       decimal.Decimal
	reportedTotal      decimal.Decimal
	notes              string

	guard guard.ConstructorGuard
}

// NewIngestRateConfirmationCommand creates a command to ingest a rate
// confirmation. Validates the identifier, the reference and the reported
// distance; the rate and total are recorded as given.
func NewIngestRateConfirmationCommand(
	rateConfirmationID kernel.UUID,
	reference string,
	reportedDistance decimal.Decimal,
	reportedRate decimal.Decimal,
	reportedTotal decimal.Decimal,
	notes string,
) (IngestRateConfirmationCommand, error) {
	command := IngestRateConfirmationCommand{
		reportedRate:  reportedRate,
		reportedTotal: reportedTotal,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRateConfirmationID(rateConfirmationID),
		command.setReference(reference),
		command.setReportedDistance(reportedDistance),
	); err != nil {
		return IngestRateConfirmationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c IngestRateConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrIngestRateConfirmationCommandIsNotConstructed)
}

// RateConfirmationID returns the unique identifier for the confirmation.
func (c IngestRateConfirmationCommand) RateConfirmationID() kernel.UUID {
	return c.rateConfirmationID
}

// Reference returns the client's load number.
func (c IngestRateConfirmationCommand) Reference() string {
	return c.reference
}

// ReportedDistance returns the distance the client billed for.
func (c IngestRateConfirmationCommand) ReportedDistance() decimal.Decimal {
	return c.reportedDistance
}

// ReportedRate returns the per-distance-unit rate on the paperwork.
func (c IngestRateConfirmationCommand) ReportedRate() decimal.Decimal {
	return c.reportedRate
}

// ReportedTotal returns the payout figure on the paperwork.
func (c IngestRateConfirmationCommand) ReportedTotal() decimal.Decimal {
	return c.reportedTotal
}

// Notes returns the free-form remarks to store with the confirmation.
func (c IngestRateConfirmationCommand) Notes() string {
	return c.notes
}

func (c *IngestRateConfirmationCommand) setRateConfirmationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.rateConfirmationID = id
	return nil
}

func (c *IngestRateConfirmationCommand) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}

func (c *IngestRateConfirmationCommand) setReportedDistance(distance decimal.Decimal) error {
	if !distance.IsPositive() {
		return ErrReportedDistanceIsInvalid
	}

	c.reportedDistance = distance
	return nil
}
