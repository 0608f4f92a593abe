package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the dispatch-specific failure kinds. These carry the
// recoverable/non-recoverable contract the callers rely on:
// ErrResourceUnavailable and ErrAlreadyMatched are expected contention
// outcomes a human retries with different inputs; ErrProviderUnavailable is
// an infrastructure failure retried with backoff; ErrInvalidTransition is a
// programming or workflow error and is never retried.
var (
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrAlreadyMatched      = errors.New("rate confirmation already matched")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// ResourceUnavailableError reports a failed exclusive claim. Kind names the
// resource type ("trailer", "driver") and IDs lists every identifier the
// caller asked for, so the human-facing message can say which claim lost.
type ResourceUnavailableError struct {
	Kind  string
	IDs   []string
	Cause error
}

// NewResourceUnavailableError creates a ResourceUnavailableError without a cause.
func NewResourceUnavailableError(kind string, ids []string) *ResourceUnavailableError {
	return &ResourceUnavailableError{Kind: kind, IDs: ids}
}

// NewResourceUnavailableErrorWithCause creates a ResourceUnavailableError
// wrapping a storage error.
func NewResourceUnavailableErrorWithCause(kind string, ids []string, cause error) *ResourceUnavailableError {
	return &ResourceUnavailableError{Kind: kind, IDs: ids, Cause: cause}
}

func (e *ResourceUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s [%s] (cause: %s)",
			ErrResourceUnavailable, e.Kind, strings.Join(e.IDs, ", "), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s [%s]", ErrResourceUnavailable, e.Kind, strings.Join(e.IDs, ", ")))
}

func (e *ResourceUnavailableError) Unwrap() error {
	return ErrResourceUnavailable
}

// InvalidTransitionError reports an illegal state-machine edge on a move.
type InvalidTransitionError struct {
	MoveID string
	From   string
	To     string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(moveID, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{MoveID: moveID, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: move %s cannot go from %s to %s",
		ErrInvalidTransition, e.MoveID, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyMatchedError reports a violation of the one-to-one link between a
// rate confirmation and a move: either side already participates in a match.
type AlreadyMatchedError struct {
	RateConfirmationID string
	MoveID             string
	Cause              error
}

// NewAlreadyMatchedError creates an AlreadyMatchedError without a cause.
func NewAlreadyMatchedError(rateConfirmationID, moveID string) *AlreadyMatchedError {
	return &AlreadyMatchedError{RateConfirmationID: rateConfirmationID, MoveID: moveID}
}

// NewAlreadyMatchedErrorWithCause creates an AlreadyMatchedError wrapping the
// storage-level uniqueness violation.
func NewAlreadyMatchedErrorWithCause(rateConfirmationID, moveID string, cause error) *AlreadyMatchedError {
	return &AlreadyMatchedError{RateConfirmationID: rateConfirmationID, MoveID: moveID, Cause: cause}
}

func (e *AlreadyMatchedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: rate confirmation %s, move %s (cause: %s)",
			ErrAlreadyMatched, e.RateConfirmationID, e.MoveID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: rate confirmation %s, move %s",
		ErrAlreadyMatched, e.RateConfirmationID, e.MoveID))
}

func (e *AlreadyMatchedError) Unwrap() error {
	return ErrAlreadyMatched
}

// ProviderUnavailableError reports a failed call to an injected external
// collaborator (distance or rate provider).
type ProviderUnavailableError struct {
	Provider string
	Cause    error
}

// NewProviderUnavailableError creates a ProviderUnavailableError wrapping the
// collaborator failure.
func NewProviderUnavailableError(provider string, cause error) *ProviderUnavailableError {
	return &ProviderUnavailableError{Provider: provider, Cause: cause}
}

func (e *ProviderUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrProviderUnavailable, e.Provider, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrProviderUnavailable, e.Provider))
}

func (e *ProviderUnavailableError) Unwrap() error {
	return ErrProviderUnavailable
}
