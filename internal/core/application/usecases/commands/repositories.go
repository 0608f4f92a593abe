// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"swapdispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TrailerRepoFactory provides access to the trailer repository within a transaction.
	TrailerRepoFactory interface {
		TrailerRepository() ports.TrailerRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// MoveRepoFactory provides access to the move repository within a transaction.
	MoveRepoFactory interface {
		MoveRepository() ports.MoveRepository
	}

	// RateConfirmationRepoFactory provides access to the rate confirmation
	// repository within a transaction.
	RateConfirmationRepoFactory interface {
		RateConfirmationRepository() ports.RateConfirmationRepository
	}

	// TrailerUoW manages transactions for trailer-only operations.
	// Used by registry intake commands that only touch trailer aggregates.
	TrailerUoW interface {
		TxManager
		TrailerRepoFactory
	}

	// TrailerUoWFactory creates new trailer unit of work instances.
	TrailerUoWFactory interface {
		Create() TrailerUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RateConfirmationUoW manages transactions for confirmation intake.
	RateConfirmationUoW interface {
		TxManager
		RateConfirmationRepoFactory
	}

	// RateConfirmationUoWFactory creates new confirmation unit of work instances.
	RateConfirmationUoWFactory interface {
		Create() RateConfirmationUoW
	}

	// ResourceUoW manages transactions spanning a move and its claimed
	// resources. Used by the lifecycle commands so a claim shortfall rolls
	// every status flip back in one piece.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   moveRepo := uow.MoveRepository()
	//   trailerRepo := uow.TrailerRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ResourceUoW interface {
		TxManager
		TrailerRepoFactory
		DriverRepoFactory
		MoveRepoFactory
	}

	// ResourceUoWFactory creates new unit of work instances for lifecycle commands.
	ResourceUoWFactory interface {
		Create() ResourceUoW
	}

	// ReconciliationUoW manages transactions spanning a move and a rate
	// confirmation. Used when matching paperwork against a completed move.
	ReconciliationUoW interface {
		TxManager
		MoveRepoFactory
		RateConfirmationRepoFactory
	}

	// ReconciliationUoWFactory creates new reconciliation unit of work instances.
	ReconciliationUoWFactory interface {
		Create() ReconciliationUoW
	}
)
