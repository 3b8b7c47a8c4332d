// Package interpret turns a segmented line block into a structured run.
package interpret

import (
	"fmt"
	"log"
	"strings"

	"schedule_parser/internal/patterns"
	"schedule_parser/internal/run"
	"schedule_parser/internal/segment"
)

// MinBlockLines is the minimum block size that can be interpreted. Shorter
// blocks are skipped upstream with a warning.
const MinBlockLines = 6

// Positional field mapping. Line order is the contract: the dispatch system
// emits fields on fixed lines, and missing trailing lines default to empty.
const (
	posID = iota
	posTime
	posThird  // flight number (pickup) or origin location (dropoff)
	posFourth // airport line (pickup) or airport + flight line (dropoff)
	posPassengerInfo
	posLocation
	posPassengerCount
	posPrice
)

// classifyRule is a named pickup/dropoff classification predicate. Rules are
// tried in order and the first match wins; new message format variants are
// added as rules rather than edits to the interpretation flow.
type classifyRule struct {
	name    string
	matches func(thirdLine string) bool
	runType string
}

// classifyRules orders the type classification. Pickups carry the flight
// identifier early (the run starts at the airport); anything without one is
// a dropoff, which lists the origin location first.
var classifyRules = []classifyRule{
	{name: "flight-number-line", matches: patterns.IsFlightNumberLine, runType: run.TypePickup},
	{name: "flight-number-within", matches: patterns.ContainsFlightNumber, runType: run.TypePickup},
}

const fallbackRule = "no-flight-number"

// Block interprets a single block into a ParsedRun. It never panics across
// its boundary: internal failures are recovered, logged, and reported as a
// nil result, which the caller records as a block error.
func Block(lines segment.Block, blockIndex int) (parsed *run.ParsedRun) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("interpret: block %d: recovered from %v", blockIndex+1, r)
			parsed = nil
		}
	}()

	parsed, _ = interpret(lines, blockIndex, nil)
	return parsed
}

// field returns the line at position i, or empty when the block is shorter.
func field(lines segment.Block, i int) string {
	if i >= len(lines) {
		return ""
	}
	return lines[i]
}

// interpret does the actual work; trace may be nil. Split out so the traced
// and untraced paths share one flow.
func interpret(lines segment.Block, blockIndex int, trace *Trace) (*run.ParsedRun, *Trace) {
	if len(lines) < MinBlockLines {
		return nil, trace.skipped(fmt.Sprintf("only %d lines", len(lines)))
	}

	sourceID := field(lines, posID)
	id := sourceID
	if id == "" {
		id = fmt.Sprintf("run-%d", blockIndex+1)
	}

	time := patterns.NormalizeTime(field(lines, posTime))

	cancelled := false
	for _, line := range lines {
		if patterns.IsCancelLine(line) {
			cancelled = true
			break
		}
	}

	thirdLine := field(lines, posThird)
	fourthLine := field(lines, posFourth)
	passengerInfo := field(lines, posPassengerInfo)
	locationInfo := field(lines, posLocation)
	passengerCount := field(lines, posPassengerCount)
	price := field(lines, posPrice)

	runType := run.TypeDropoff
	rule := fallbackRule
	for _, r := range classifyRules {
		if r.matches(thirdLine) {
			runType = r.runType
			rule = r.name
			break
		}
	}

	parsed := &run.ParsedRun{
		ID:             id,
		Time:           time,
		Type:           runType,
		PassengerInfo:  passengerInfo,
		PassengerCount: passengerCount,
		Price:          price,
	}

	if runType == run.TypePickup {
		parsed.FlightNumber = patterns.ExtractFlightNumber(thirdLine)
		parsed.Airline = patterns.AirlineName(patterns.CarrierCode(parsed.FlightNumber))
		airport := patterns.ExtractAirportCode(fourthLine)
		parsed.DepartureAirport = airport
		parsed.ArrivalAirport = airport
		parsed.PickupLocation = airport
		parsed.DropoffLocation = locationInfo
	} else {
		airport := patterns.ExtractAirportCode(fourthLine)
		parsed.FlightNumber = patterns.ExtractFlightNumber(fourthLine)
		parsed.Airline = patterns.AirlineName(patterns.CarrierCode(parsed.FlightNumber))
		parsed.DepartureAirport = airport
		parsed.ArrivalAirport = airport
		parsed.PickupLocation = thirdLine
		parsed.DropoffLocation = airport
	}

	phone := patterns.ExtractPhoneNumber(strings.Join(lines, " "))
	parsed.Notes = composeNotes(passengerInfo, passengerCount, price, phone, cancelled, sourceID)

	return parsed, trace.record(rule, cancelled, parsed, map[string]string{
		"flight_number": parsed.FlightNumber,
		"airline":       parsed.Airline,
		"airport":       parsed.DepartureAirport,
		"phone":         phone,
		"time":          parsed.Time,
	})
}

// composeNotes builds the pipe-joined notes composite. The segment order is
// a contract: passenger info, passenger count, price, phone, cancellation
// marker, original source ID. Empty segments are dropped, populated ones
// never are.
func composeNotes(passengerInfo, passengerCount, price, phone string, cancelled bool, sourceID string) string {
	var segments []string
	if passengerInfo != "" {
		segments = append(segments, passengerInfo)
	}
	if passengerCount != "" {
		segments = append(segments, "Passengers: "+passengerCount)
	}
	if price != "" {
		segments = append(segments, "Price: "+price)
	}
	if phone != "" {
		segments = append(segments, "Phone: "+phone)
	}
	if cancelled {
		segments = append(segments, run.CancelledMarker)
	}
	if sourceID != "" {
		segments = append(segments, "Ref: "+sourceID)
	}
	return strings.Join(segments, " | ")
}
