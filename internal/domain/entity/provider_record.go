// internal/domain/entity/provider_record.go
package entity

import (
	"encoding/json"
)

// ProviderFlightRecord is one flight-status document as returned by the
// aviationstack API. Raw preserves the original document byte-for-byte for
// the audit archive; missing string fields decode to "".
type ProviderFlightRecord struct {
	FlightDate   string           `json:"flight_date"`
	FlightStatus string           `json:"flight_status"`
	Departure    ProviderEndpoint `json:"departure"`
	Arrival      ProviderEndpoint `json:"arrival"`
	Airline      ProviderAirline  `json:"airline"`
	Flight       ProviderIdent    `json:"flight"`
	Raw          json.RawMessage  `json:"-"`
}

// ProviderEndpoint is the departure or arrival sub-object of a record.
type ProviderEndpoint struct {
	Airport   string `json:"airport"`
	Timezone  string `json:"timezone"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Terminal  string `json:"terminal"`
	Gate      string `json:"gate"`
	Delay     *int   `json:"delay"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
	Actual    string `json:"actual"`
}

// ProviderAirline is the airline sub-object of a record.
type ProviderAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

// ProviderIdent is the flight-identity sub-object of a record.
type ProviderIdent struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
	ICAO   string `json:"icao"`
}
