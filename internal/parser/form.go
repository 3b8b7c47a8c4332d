package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"schedule_parser/internal/patterns"
	"schedule_parser/internal/run"
)

// ConvertParsedRunToForm converts a parsed run into the record shape used by
// the manual add-run form, resolving ASAP and a missing base date against
// the wall clock.
func ConvertParsedRunToForm(parsed *run.ParsedRun, baseDate string) run.FormRecord {
	return ConvertParsedRunToFormAt(parsed, baseDate, time.Now())
}

// ConvertParsedRunToFormAt is ConvertParsedRunToForm with an injected "now",
// keeping ASAP resolution and the base date default deterministic under test.
func ConvertParsedRunToFormAt(parsed *run.ParsedRun, baseDate string, now time.Time) run.FormRecord {
	if baseDate == "" {
		baseDate = now.Format("2006-01-02")
	}

	record := run.FormRecord{
		FlightNumber:    parsed.FlightNumber,
		Airline:         parsed.Airline,
		Departure:       parsed.DepartureAirport,
		Arrival:         parsed.ArrivalAirport,
		PickupLocation:  parsed.PickupLocation,
		DropoffLocation: parsed.DropoffLocation,
		Type:            parsed.Type,
		Notes:           parsed.Notes,
		Status:          run.StatusScheduled,
	}
	if parsed.Cancelled() {
		record.Status = run.StatusCancelled
	}

	if clock, ok := clockTime(parsed.Time, now); ok {
		record.ScheduledTime = baseDate + "T" + clock
	}

	return record
}

// clockTime resolves a normalized run time to 24-hour "HH:MM". ASAP resolves
// to now's wall-clock time. Anything unparseable reports false, leaving the
// scheduled time empty: callers treat that as "needs manual input", not as a
// parser failure.
func clockTime(normalized string, now time.Time) (string, bool) {
	if normalized == patterns.ASAPTime {
		return now.Format("15:04"), true
	}

	m := patterns.TimePattern.FindStringSubmatch(strings.TrimSpace(normalized))
	if m == nil {
		return "", false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return "", false
	}
	minutes := m[2]
	if minutes == "" {
		minutes = "00"
	}
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%s", hour, minutes), true
}
