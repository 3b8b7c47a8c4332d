// Package patterns provides shared regex patterns and lookup tables for
// dispatch schedule-message parsing.
package patterns

import "regexp"

// Block boundary patterns. A line matching one of these opens a new run
// candidate during segmentation.
var (
	// NewRunPattern matches vehicle-class marker lines that open a run block.
	// An optional run-ID prefix (digits, optional star) precedes a vehicle
	// class keyword anywhere on the line.
	// Examples: "101*2 SUV", "47 EXEC", "Sedan pickup"
	NewRunPattern = regexp.MustCompile(`(?i)^(?:\d+\*?\d*\s+)?.*(SUV|EXEC|SEDAN)`)

	// ASAPPattern matches a whole line consisting of the ASAP sentinel.
	ASAPPattern = regexp.MustCompile(`(?i)^ASAP$`)
)

// Flight number patterns.
var (
	// FlightNumStrictPattern matches a line that is exactly a flight number:
	// 2-3 letter carrier code, optional space, 1-4 digits, optional letter.
	// Examples: "AA123", "UA 2457", "DL1086A"
	FlightNumStrictPattern = regexp.MustCompile(`^([A-Z]{2,3})\s*(\d{1,4})([A-Z]?)$`)

	// FlightNumPattern matches a flight number anywhere in text.
	FlightNumPattern = regexp.MustCompile(`\b([A-Z]{2,3})\s*(\d{1,4})([A-Z]?)\b`)

	// CabinFlightPattern matches the regional ground-shuttle run format.
	// Example: "CABIN #101-205"
	CabinFlightPattern = regexp.MustCompile(`(?i)^CABIN\s*#?\d{1,3}-\d{1,3}$`)
)

// Field patterns.
var (
	// TimePattern matches 12-hour clock times; minutes are optional.
	// Examples: "11:00 AM", "7 PM", "12:05am"
	TimePattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)$`)

	// PhonePattern matches US phone numbers with optional separators.
	// Examples: "307-733-3135", "307.733.3135", "3077333135"
	PhonePattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)

	// AirportCodePattern matches a bare 2-4 letter upper-case airport code.
	AirportCodePattern = regexp.MustCompile(`\b([A-Z]{2,4})\b`)

	// cancelPattern flags cancellation wording anywhere in a line.
	cancelPattern = regexp.MustCompile(`(?i)CANCEL`)
)

// HomeAirport is the fallback when an airport code cannot be classified.
const HomeAirport = "JAC"

// UnknownAirline is the placeholder when no carrier code can be derived.
const UnknownAirline = "Unknown Airline"

// AirlineNames maps carrier codes to airline names. Codes not listed here
// get a synthesized "<CODE> Airlines" placeholder instead of failing.
var AirlineNames = map[string]string{
	"AA":  "American Airlines",
	"AS":  "Alaska Airlines",
	"B6":  "JetBlue Airways",
	"DL":  "Delta Air Lines",
	"F9":  "Frontier Airlines",
	"NK":  "Spirit Airlines",
	"SY":  "Sun Country Airlines",
	"UA":  "United Airlines",
	"WN":  "Southwest Airlines",
	"OO":  "SkyWest Airlines",
	"SKW": "SkyWest Airlines",
	"UAL": "United Airlines",
	"AAL": "American Airlines",
	"DAL": "Delta Air Lines",
}

// AirportAliases remaps idiosyncratic local codes used by the dispatch
// system to real airport codes.
var AirportAliases = map[string]string{
	"AP":      HomeAirport, // generic "airport" shorthand
	"APT":     HomeAirport,
	"AIRPORT": HomeAirport,
	"JH":      HomeAirport,
	"CABIN":   "DIJ", // ground shuttle staging at Driggs
	"DRIGGS":  "DIJ",
	"IF":      "IDA",
}

// knownAirports are codes accepted as-is without remapping.
var knownAirports = map[string]bool{
	"JAC": true, // Jackson Hole
	"DIJ": true, // Driggs
	"IDA": true, // Idaho Falls
	"SLC": true, // Salt Lake City
	"BIL": true, // Billings
	"COD": true, // Cody
	"WYS": true, // West Yellowstone
}

// IsKnownAirport reports whether code is a recognised airport code.
func IsKnownAirport(code string) bool {
	return knownAirports[code]
}
