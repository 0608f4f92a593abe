// Package payment contains the payout value objects: the Breakdown attached
// to a completed move and the Mode selecting how the driver pool is derived
// from the billed gross. All amounts are decimal and reconcile exactly.
package payment
