// Package patterns provides extraction functions for schedule-message parsing.
package patterns

import (
	"fmt"
	"strconv"
	"strings"
)

// ASAPTime is the normalized sentinel for as-soon-as-possible runs.
const ASAPTime = "ASAP"

// IsNewRunLine reports whether a line opens a new run block: a vehicle-class
// marker line or a bare ASAP sentinel.
func IsNewRunLine(line string) bool {
	return NewRunPattern.MatchString(line) || ASAPPattern.MatchString(line)
}

// IsCancelLine reports whether a line carries cancellation wording.
func IsCancelLine(line string) bool {
	return cancelPattern.MatchString(line)
}

// IsFlightNumberLine reports whether a line is exactly a flight number,
// including the CABIN ground-shuttle variant.
func IsFlightNumberLine(line string) bool {
	line = strings.TrimSpace(line)
	if FlightNumStrictPattern.MatchString(strings.ToUpper(line)) {
		return true
	}
	return CabinFlightPattern.MatchString(line)
}

// ContainsFlightNumber reports whether a flight number appears anywhere in text.
func ContainsFlightNumber(text string) bool {
	return FlightNumPattern.MatchString(strings.ToUpper(text))
}

// NormalizeTime converts a raw time string to "HH:MM AM|PM" form.
// ASAP (any case) maps to the ASAP sentinel. Missing minutes default to 00.
// Anything unparseable passes through verbatim (trimmed) - the form adapter
// downgrades it to "needs manual input" rather than erroring here.
func NormalizeTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, ASAPTime) {
		return ASAPTime
	}

	m := TimePattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return raw
	}
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}
	return fmt.Sprintf("%02d:%s %s", hour, minutes, strings.ToUpper(m[3]))
}

// ExtractFlightNumber extracts a normalized flight number from text.
// Carrier code and digits are joined without spaces ("UA 2457" -> "UA2457").
// CABIN ground-shuttle identifiers are kept verbatim, uppercased.
// Returns empty when no flight number is present.
func ExtractFlightNumber(text string) string {
	text = strings.TrimSpace(text)
	if CabinFlightPattern.MatchString(text) {
		return strings.ToUpper(text)
	}

	upper := strings.ToUpper(text)
	if m := FlightNumStrictPattern.FindStringSubmatch(upper); m != nil {
		return m[1] + m[2] + m[3]
	}
	if m := FlightNumPattern.FindStringSubmatch(upper); m != nil {
		return m[1] + m[2] + m[3]
	}
	return ""
}

// CarrierCode returns the leading carrier-code prefix of a flight number,
// or empty when the flight number has no recognisable prefix.
func CarrierCode(flightNumber string) string {
	m := FlightNumStrictPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(flightNumber)))
	if m == nil {
		return ""
	}
	return m[1]
}

// AirlineName resolves a carrier code to an airline name. Unknown codes
// synthesize a "<CODE> Airlines" placeholder; an empty code resolves to the
// UnknownAirline placeholder.
func AirlineName(code string) string {
	if code == "" {
		return UnknownAirline
	}
	code = strings.ToUpper(code)
	if name, ok := AirlineNames[code]; ok {
		return name
	}
	return code + " Airlines"
}

// ExtractAirportCode finds an airport code in text. Local shorthands are
// remapped through AirportAliases, recognised codes pass through, and any
// other all-caps 2-4 letter token is accepted unchanged. When nothing
// classifies, the home airport is returned.
func ExtractAirportCode(text string) string {
	for _, tok := range strings.Fields(strings.ToUpper(text)) {
		tok = strings.Trim(tok, ".,;:#()")
		if code, ok := AirportAliases[tok]; ok {
			return code
		}
		if knownAirports[tok] {
			return tok
		}
	}

	// Pass-through requires the token be upper-case in the original text.
	if tok := AirportCodePattern.FindString(text); tok != "" {
		return tok
	}

	return HomeAirport
}

// ExtractPhoneNumber returns the first phone number found in text, or empty.
func ExtractPhoneNumber(text string) string {
	return PhonePattern.FindString(text)
}
