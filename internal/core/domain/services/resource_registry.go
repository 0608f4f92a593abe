package services

import (
	"swapdispatch/internal/core/domain/model/driver"
	"swapdispatch/internal/core/domain/model/kernel"
	"swapdispatch/internal/core/domain/model/move"
	"swapdispatch/internal/core/domain/model/trailer"
	"swapdispatch/internal/pkg/errs"
)

// ResourceRegistry is a domain service that keeps a move and its claimed
// resources consistent. It works on already-loaded aggregates; the caller
// persists every touched aggregate in one transaction, so a failure anywhere
// leaves nothing half-claimed.
//
// Business rules:
//   - Claiming is all-or-nothing: both trailers and every driver, or error
//   - The trailers of one move are distinct units
//   - A retired trailer never enters a move
//   - Completion drops the trailers at the move's destination; cancellation
//     releases everything where it already sits
type ResourceRegistry struct{}

// NewResourceRegistry creates a new ResourceRegistry instance.
func NewResourceRegistry() ResourceRegistry {
	return ResourceRegistry{}
}

// ClaimForMove claims both trailers and every driver for the move and
// transitions the move to Assigned.
//
// Any unclaimable resource aborts the whole operation with a
// ResourceUnavailable error naming the resource. The caller must not persist
// any of the aggregates after a failure; some may have been mutated.
func (r ResourceRegistry) ClaimForMove(
	m *move.Move,
	newTrailer *trailer.Trailer,
	oldTrailer *trailer.Trailer,
	drivers []*driver.Driver,
) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for _, t := range []*trailer.Trailer{newTrailer, oldTrailer} {
		if err := t.Validate(); err != nil {
			return err
		}
		if err := t.Claim(); err != nil {
			return errs.NewResourceUnavailableErrorWithCause("trailer", []string{t.ID().String()}, err)
		}
	}

	for _, d := range drivers {
		if err := d.Validate(); err != nil {
			return err
		}
		if err := d.Claim(); err != nil {
			return errs.NewResourceUnavailableErrorWithCause("driver", []string{d.ID().String()}, err)
		}
	}

	return m.AssignResources(newTrailer.ID(), oldTrailer.ID(), driverIDs(drivers))
}

// StartMove marks the move as under way and both trailers as in transit.
func (r ResourceRegistry) StartMove(
	m *move.Move,
	newTrailer *trailer.Trailer,
	oldTrailer *trailer.Trailer,
) error {
	if err := m.Start(); err != nil {
		return err
	}

	for _, t := range []*trailer.Trailer{newTrailer, oldTrailer} {
		if err := t.Start(); err != nil {
			return err
		}
	}

	return nil
}

// ReleaseForCompletion releases the move's resources after a completed swap:
// both trailers become Available at the move's destination and every driver
// becomes Available.
//
// The move itself is completed separately, with its distance and payment,
// before the resources are released.
func (r ResourceRegistry) ReleaseForCompletion(
	m *move.Move,
	newTrailer *trailer.Trailer,
	oldTrailer *trailer.Trailer,
	drivers []*driver.Driver,
) error {
	for _, t := range []*trailer.Trailer{newTrailer, oldTrailer} {
		if err := t.Release(m.Destination()); err != nil {
			return err
		}
	}

	return releaseDrivers(drivers)
}

// ReleaseForCancellation releases the move's resources after a cancellation:
// statuses return to Available, locations stay where they already are.
func (r ResourceRegistry) ReleaseForCancellation(
	newTrailer *trailer.Trailer,
	oldTrailer *trailer.Trailer,
	drivers []*driver.Driver,
) error {
	for _, t := range []*trailer.Trailer{newTrailer, oldTrailer} {
		if err := t.Release(t.Location()); err != nil {
			return err
		}
	}

	return releaseDrivers(drivers)
}

func releaseDrivers(drivers []*driver.Driver) error {
	for _, d := range drivers {
		if err := d.Release(); err != nil {
			return err
		}
	}
	return nil
}

func driverIDs(drivers []*driver.Driver) []kernel.UUID {
	ids := make([]kernel.UUID, len(drivers))
	for i, d := range drivers {
		ids[i] = d.ID()
	}
	return ids
}
