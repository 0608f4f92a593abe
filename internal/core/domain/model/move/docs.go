// Package move contains the Move aggregate: one trailer-swap job that claims
// two trailers and one or more drivers, runs through the
// Pending/Assigned/InProgress/Completed/Cancelled state machine, and carries
// the payment breakdown and reconciliation delta once they exist.
package move
