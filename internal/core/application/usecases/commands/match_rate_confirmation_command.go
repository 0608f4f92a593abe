package commands

import (
	"errors"

	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/pkg/guard"
)

var (
	ErrMatchRateConfirmationCommandIsNotConstructed = errors.New(
		"MatchRateConfirmationCommand must be created via NewMatchRateConfirmationCommand constructor",
	)
	ErrMatchedByIsRequired = errors.New("matched by is required")
)

// MatchRateConfirmationCommand represents a request to link a confirmation
// to a move and record the mileage disagreement on the move. Matching is
// strictly one-to-one and irreversible.
type MatchRateConfirmationCommand struct { //nolint:recvcheck //using for validation
	rateConfirmationID kernel.UUID
	moveID             kernel.UUID
	matchedBy          string

	guard guard.ConstructorGuard
}

// NewMatchRateConfirmationCommand creates a command to match a confirmation
// against a move, recording who performed the match.
func NewMatchRateConfirmationCommand(
	rateConfirmationID kernel.UUID,
	moveID kernel.UUID,
	matchedBy string,
) (MatchRateConfirmationCommand, error) {
	command := MatchRateConfirmationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRateConfirmationID(rateConfirmationID),
		command.setMoveID(moveID),
		command.setMatchedBy(matchedBy),
	); err != nil {
		return MatchRateConfirmationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MatchRateConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrMatchRateConfirmationCommandIsNotConstructed)
}

// RateConfirmationID returns the unique identifier for the confirmation.
func (c MatchRateConfirmationCommand) RateConfirmationID() kernel.UUID {
	return c.rateConfirmationID
}

// MoveID returns the move to match against.
func (c MatchRateConfirmationCommand) MoveID() kernel.UUID {
	return c.moveID
}

// MatchedBy returns who is performing the match.
func (c MatchRateConfirmationCommand) MatchedBy() string {
	return c.matchedBy
}

func (c *MatchRateConfirmationCommand) setRateConfirmationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.rateConfirmationID = id
	return nil
}

func (c *MatchRateConfirmationCommand) setMoveID(moveID kernel.UUID) error {
	if err := moveID.Validate(); err != nil {
		return err
	}

	c.moveID = moveID
	return nil
}

func (c *MatchRateConfirmationCommand) setMatchedBy(matchedBy string) error {
	if matchedBy == "" {
		return ErrMatchedByIsRequired
	}

	c.matchedBy = matchedBy
	return nil
}
