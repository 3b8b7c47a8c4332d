// Package run provides the data model for parsed schedule runs.
package run

import "strings"

// Run types. Every parsed run is exactly one of these.
const (
	TypePickup  = "pickup"
	TypeDropoff = "dropoff"
)

// Form record statuses.
const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
)

// CancelledMarker is the literal notes segment that flags a cancelled run.
const CancelledMarker = "CANCELLED"

// ParsedRun is a single run extracted from a dispatch message.
type ParsedRun struct {
	ID               string `json:"id"`
	Time             string `json:"time"` // "HH:MM AM|PM", "ASAP", or verbatim pass-through
	FlightNumber     string `json:"flight_number,omitempty"`
	Airline          string `json:"airline,omitempty"`
	DepartureAirport string `json:"departure_airport,omitempty"`
	ArrivalAirport   string `json:"arrival_airport,omitempty"`
	PickupLocation   string `json:"pickup_location,omitempty"`
	DropoffLocation  string `json:"dropoff_location,omitempty"`
	Type             string `json:"type"` // TypePickup or TypeDropoff
	PassengerInfo    string `json:"passenger_info,omitempty"`
	PassengerCount   string `json:"passenger_count,omitempty"`
	Price            string `json:"price,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// Cancelled reports whether the run carries the CANCELLED notes marker.
func (r *ParsedRun) Cancelled() bool {
	for _, seg := range strings.Split(r.Notes, "|") {
		if strings.TrimSpace(seg) == CancelledMarker {
			return true
		}
	}
	return false
}

// ParseResult aggregates everything extracted from one message.
// Success is true iff at least one run was produced; errors and warnings
// accumulate independently, so a partially malformed message still succeeds.
type ParseResult struct {
	Success  bool         `json:"success"`
	Runs     []*ParsedRun `json:"runs"`
	Errors   []string     `json:"errors,omitempty"`
	Warnings []string     `json:"warnings,omitempty"`
}

// FormRecord is the shape accepted by the run-creation form. Parsed and
// manually entered runs are indistinguishable downstream of this.
type FormRecord struct {
	FlightNumber    string `json:"flight_number,omitempty"`
	Airline         string `json:"airline,omitempty"`
	Departure       string `json:"departure,omitempty"`
	Arrival         string `json:"arrival,omitempty"`
	PickupLocation  string `json:"pickup_location,omitempty"`
	DropoffLocation string `json:"dropoff_location,omitempty"`
	ScheduledTime   string `json:"scheduled_time"` // "YYYY-MM-DDTHH:MM", empty = needs manual input
	Type            string `json:"type"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
}
