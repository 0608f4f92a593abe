// Package driver contains the Driver aggregate: a company driver or
// owner-operator who performs trailer swaps, tracked through the
// Available/OnTrip claim lifecycle.
package driver
