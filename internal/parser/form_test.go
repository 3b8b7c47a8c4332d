package parser

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"schedule_parser/internal/run"
)

func fixedNow(t *testing.T, value string) time.Time {
	t.Helper()
	now, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", value, err)
	}
	return now
}

func TestConvertParsedRunToFormAt_ASAP(t *testing.T) {
	parsed := &run.ParsedRun{Time: "ASAP", Type: run.TypePickup}
	record := ConvertParsedRunToFormAt(parsed, "2024-01-01", fixedNow(t, "2024-03-15 14:07"))
	if record.ScheduledTime != "2024-01-01T14:07" {
		t.Errorf("ScheduledTime = %q, want %q", record.ScheduledTime, "2024-01-01T14:07")
	}
}

func TestConvertParsedRunToFormAt_TimeConversion(t *testing.T) {
	tests := []struct {
		runTime string
		want    string
	}{
		{"11:00 AM", "2024-01-01T11:00"},
		{"12:00 AM", "2024-01-01T00:00"}, // midnight
		{"12:30 PM", "2024-01-01T12:30"}, // noon stays 12
		{"05:45 PM", "2024-01-01T17:45"},
		{"01:00 PM", "2024-01-01T13:00"},
		// Unparseable times leave the field empty: "needs manual input".
		{"around noon", ""},
		{"", ""},
	}

	now := fixedNow(t, "2024-03-15 14:07")
	for _, tt := range tests {
		parsed := &run.ParsedRun{Time: tt.runTime, Type: run.TypeDropoff}
		record := ConvertParsedRunToFormAt(parsed, "2024-01-01", now)
		if record.ScheduledTime != tt.want {
			t.Errorf("time %q: ScheduledTime = %q, want %q", tt.runTime, record.ScheduledTime, tt.want)
		}
	}
}

func TestConvertParsedRunToFormAt_BaseDateDefaultsToNow(t *testing.T) {
	parsed := &run.ParsedRun{Time: "09:00 AM", Type: run.TypePickup}
	record := ConvertParsedRunToFormAt(parsed, "", fixedNow(t, "2024-03-15 14:07"))
	if record.ScheduledTime != "2024-03-15T09:00" {
		t.Errorf("ScheduledTime = %q, want %q", record.ScheduledTime, "2024-03-15T09:00")
	}
}

func TestConvertParsedRunToFormAt_PassThroughFields(t *testing.T) {
	parsed := &run.ParsedRun{
		ID:               "101*2 SUV",
		Time:             "11:00 AM",
		FlightNumber:     "AA123",
		Airline:          "American Airlines",
		DepartureAirport: "JAC",
		ArrivalAirport:   "JAC",
		PickupLocation:   "JAC",
		DropoffLocation:  "Teton Village Hotel",
		Type:             run.TypePickup,
		Notes:            "2 adults | Price: $85",
	}

	record := ConvertParsedRunToFormAt(parsed, "2024-01-01", fixedNow(t, "2024-03-15 14:07"))
	if record.FlightNumber != parsed.FlightNumber {
		t.Errorf("FlightNumber = %q, want %q", record.FlightNumber, parsed.FlightNumber)
	}
	if record.Airline != parsed.Airline {
		t.Errorf("Airline = %q, want %q", record.Airline, parsed.Airline)
	}
	if record.Departure != "JAC" || record.Arrival != "JAC" {
		t.Errorf("airports = %q/%q, want JAC/JAC", record.Departure, record.Arrival)
	}
	if record.DropoffLocation != parsed.DropoffLocation {
		t.Errorf("DropoffLocation = %q, want %q", record.DropoffLocation, parsed.DropoffLocation)
	}
	if record.Type != run.TypePickup {
		t.Errorf("Type = %q, want %q", record.Type, run.TypePickup)
	}
	if record.Notes != parsed.Notes {
		t.Errorf("Notes = %q, want %q", record.Notes, parsed.Notes)
	}
	if record.Status != run.StatusScheduled {
		t.Errorf("Status = %q, want %q", record.Status, run.StatusScheduled)
	}
}

func TestConvertParsedRunToFormAt_CancelledStatus(t *testing.T) {
	parsed := &run.ParsedRun{
		Time:  "11:00 AM",
		Type:  run.TypePickup,
		Notes: "2 adults | CANCELLED | Ref: 101*2 SUV",
	}
	record := ConvertParsedRunToFormAt(parsed, "2024-01-01", fixedNow(t, "2024-03-15 14:07"))
	if record.Status != run.StatusCancelled {
		t.Errorf("Status = %q, want %q", record.Status, run.StatusCancelled)
	}
}

// Round trip: a valid non-ASAP pickup time survives conversion to 24-hour
// form and back.
func TestConvertParsedRunToFormAt_RoundTrip(t *testing.T) {
	times := []string{"11:00 AM", "12:00 AM", "12:30 PM", "05:45 PM", "09:05 AM"}
	now := fixedNow(t, "2024-03-15 14:07")

	for _, original := range times {
		parsed := &run.ParsedRun{Time: original, Type: run.TypePickup}
		record := ConvertParsedRunToFormAt(parsed, "2024-01-01", now)

		clock := strings.TrimPrefix(record.ScheduledTime, "2024-01-01T")
		hour, _ := strconv.Atoi(clock[:2])
		minutes := clock[3:]
		meridiem := "AM"
		switch {
		case hour == 0:
			hour = 12
		case hour == 12:
			meridiem = "PM"
		case hour > 12:
			hour -= 12
			meridiem = "PM"
		}
		back := fmt.Sprintf("%02d:%s %s", hour, minutes, meridiem)

		if back != original {
			t.Errorf("round trip %q -> %q -> %q", original, record.ScheduledTime, back)
		}
	}
}

func TestConvertParsedRunToForm_WallClock(t *testing.T) {
	parsed := &run.ParsedRun{Time: "10:00 AM", Type: run.TypePickup}
	record := ConvertParsedRunToForm(parsed, "2024-01-01")
	if record.ScheduledTime != "2024-01-01T10:00" {
		t.Errorf("ScheduledTime = %q, want %q", record.ScheduledTime, "2024-01-01T10:00")
	}
}
