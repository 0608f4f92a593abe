// Package rateconf contains the RateConfirmation aggregate: the client's
// paperwork for one load, ingested Unmatched and irreversibly matched to
// exactly one move so the client's billed distance can be reconciled against
// the system's own figure.
package rateconf
