// internal/domain/entity/airport.go
package entity

import (
	"time"
)

// Airport is one row of the airport dimension, keyed by IATA code.
type Airport struct {
	AirportIATA string    `json:"airport_iata"`
	AirportName *string   `json:"airport_name"`
	Timezone    *string   `json:"timezone"`
	ICAO        *string   `json:"icao"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AirportUpdate carries a partial update; nil fields are left untouched.
type AirportUpdate struct {
	AirportName *string `json:"airport_name"`
	Timezone    *string `json:"timezone"`
	ICAO        *string `json:"icao"`
}
