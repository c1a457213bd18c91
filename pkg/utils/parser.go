package utils

import (
	"time"
)

// FlightKeyDelimiter separates the flight code from the flight date in the
// natural key of a flight fact row.
const FlightKeyDelimiter = ":"

// timestampLayouts are the ISO-8601 shapes the provider is known to emit,
// with and without an explicit zone offset or fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a provider timestamp string into a naive-UTC instant.
// Zoned values are converted to UTC and the zone is dropped; empty or
// unparsable input yields nil. It never fails.
func ParseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		utc := t.UTC()
		return &utc
	}
	return nil
}

// DeriveFlightKey computes the natural key of a flight occurrence from its
// IATA flight code and flight date. Both parts are required; if either is
// missing the record is un-keyable and the empty string is returned.
func DeriveFlightKey(flightIATA, flightDate string) string {
	if flightIATA == "" || flightDate == "" {
		return ""
	}
	return flightIATA + FlightKeyDelimiter + flightDate
}
