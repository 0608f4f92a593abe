package http

import "github.com/google/uuid"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by every resource-creating endpoint so the caller
// learns the server-assigned identifier.
type Created struct {
	Id uuid.UUID `json:"id"`
}

// NewTrailer is the request body for registering a trailer.
type NewTrailer struct {
	Number   string `json:"number"`
	Location string `json:"location"`
}

// Trailer is one entry of the available-trailers listing.
type Trailer struct {
	Id       uuid.UUID `json:"id"`
	Number   string    `json:"number"`
	Location string    `json:"location"`
}

// NewDriver is the request body for registering a driver.
type NewDriver struct {
	Name       string `json:"name"`
	Contractor bool   `json:"contractor"`
}

// Driver is one entry of the available-drivers listing.
type Driver struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Contractor bool      `json:"contractor"`
}

// NewMove is the request body for posting a swap run.
// ScheduledDate is a calendar date in YYYY-MM-DD form. Resources, when
// present, are claimed in the same transaction and the move is created
// Assigned; a failed claim creates nothing.
type NewMove struct {
	Origin        string           `json:"origin"`
	Destination   string           `json:"destination"`
	ScheduledDate string           `json:"scheduledDate"`
	Resources     *AssignResources `json:"resources,omitempty"`
}

// AssignResources is the request body for claiming a move's trailer pair and
// driver set. DriverIds keeps payout order.
type AssignResources struct {
	NewTrailerId string   `json:"newTrailerId"`
	OldTrailerId string   `json:"oldTrailerId"`
	DriverIds    []string `json:"driverIds"`
}

// CompleteMove is the request body for completing a move. Mode is either
// ShareOfGross or FullNet. Distance, when present, records the actual miles
// driven instead of the provider's lane distance.
type CompleteMove struct {
	Mode     string `json:"mode"`
	Distance string `json:"distance,omitempty"`
}

// CancelMove is the request body for cancelling a move.
type CancelMove struct {
	Reason string `json:"reason"`
}

// Move is one entry of the overdue-moves listing.
type Move struct {
	Id            uuid.UUID `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	ScheduledDate string    `json:"scheduledDate"`
	Status        string    `json:"status"`
}

// UnconfirmedMove is a completed move still waiting for a matched rate
// confirmation.
type UnconfirmedMove struct {
	Id            uuid.UUID `json:"id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	ScheduledDate string    `json:"scheduledDate"`
	Distance      string    `json:"distance"`
}

// MovePayment is the settlement view of a completed move. All amounts are
// decimal strings. The reported fields and the classification are present
// only after a rate confirmation has been matched.
type MovePayment struct {
	MoveId           uuid.UUID      `json:"moveId"`
	Distance         string         `json:"distance"`
	Gross            string         `json:"gross"`
	FactoringFee     string         `json:"factoringFee"`
	ServiceFee       string         `json:"serviceFee"`
	Net              string         `json:"net"`
	ReportedDelta    *string        `json:"reportedDelta,omitempty"`
	ReportedDeltaPct *string        `json:"reportedDeltaPct,omitempty"`
	Classification   *string        `json:"classification,omitempty"`
	Shares           []PaymentShare `json:"shares"`
}

// PaymentShare is one driver's slice of a move payout.
type PaymentShare struct {
	DriverId   uuid.UUID `json:"driverId"`
	DriverName string    `json:"driverName"`
	Net        string    `json:"net"`
	ServiceFee string    `json:"serviceFee"`
}

// EstimateRequest prices a hypothetical move. Either Distance is given as a
// decimal string, or Origin and Destination name a lane to resolve it from.
type EstimateRequest struct {
	Distance    string   `json:"distance,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	Destination string   `json:"destination,omitempty"`
	Mode        string   `json:"mode"`
	DriverIds   []string `json:"driverIds"`
}

// Estimate is the priced result of an EstimateRequest.
type Estimate struct {
	Distance     string          `json:"distance"`
	RatePerUnit  string          `json:"ratePerUnit"`
	Gross        string          `json:"gross"`
	FactoringFee string          `json:"factoringFee"`
	ServiceFee   string          `json:"serviceFee"`
	Net          string          `json:"net"`
	Shares       []EstimateShare `json:"shares"`
}

// EstimateShare is one driver's slice of an estimated payout.
type EstimateShare struct {
	DriverId   uuid.UUID `json:"driverId"`
	Net        string    `json:"net"`
	ServiceFee string    `json:"serviceFee"`
}

// NewRateConfirmation is the request body for ingesting broker paperwork.
// The reported amounts are decimal strings and are stored as reported, even
// when they disagree with each other.
type NewRateConfirmation struct {
	Reference        string `json:"reference"`
	ReportedDistance string `json:"reportedDistance"`
	ReportedRate     string `json:"reportedRate"`
	ReportedTotal    string `json:"reportedTotal"`
	Notes            string `json:"notes,omitempty"`
}

// RateConfirmation is one entry of the unmatched-confirmations listing.
type RateConfirmation struct {
	Id               uuid.UUID `json:"id"`
	Reference        string    `json:"reference"`
	ReportedDistance string    `json:"reportedDistance"`
	ReportedRate     string    `json:"reportedRate"`
	ReportedTotal    string    `json:"reportedTotal"`
}

// MatchRateConfirmation is the request body for matching a confirmation to a
// completed move.
type MatchRateConfirmation struct {
	MoveId    string `json:"moveId"`
	MatchedBy string `json:"matchedBy"`
}
