// internal/domain/entity/airline.go
package entity

import (
	"time"
)

// Airline is one row of the airline dimension, keyed by IATA code.
type Airline struct {
	AirlineIATA string    `json:"airline_iata"`
	ICAO        *string   `json:"icao"`
	AirlineName *string   `json:"airline_name"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AirlineUpdate carries a partial update; nil fields are left untouched.
type AirlineUpdate struct {
	ICAO        *string `json:"icao"`
	AirlineName *string `json:"airline_name"`
}

// AirlineAtAirport is one result row of the distinct-airlines-by-airport
// lookup over the fact table.
type AirlineAtAirport struct {
	AirlineIATA string  `json:"airline_iata"`
	AirlineName *string `json:"airline_name"`
}
