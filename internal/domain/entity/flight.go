// internal/domain/entity/flight.go
package entity

import (
	"time"
)

// Flight is one row of the flight fact table. FlightNK is the natural key
// {flight_iata}:{flight_date}; exactly one row exists per key. All timestamp
// fields hold naive UTC wall-clock values.
type Flight struct {
	FlightNK        string     `json:"flight_nk"`
	FlightDate      string     `json:"flight_date"`
	FlightStatus    *string    `json:"flight_status"`
	AirlineIATA     *string    `json:"airline_iata"`
	FlightNumber    *string    `json:"flight_number"`
	FlightIATA      string     `json:"flight_iata"`
	FlightICAO      *string    `json:"flight_icao"`
	DepIATA         *string    `json:"dep_iata"`
	ArrIATA         *string    `json:"arr_iata"`
	DepTerminal     *string    `json:"dep_terminal"`
	DepGate         *string    `json:"dep_gate"`
	ArrTerminal     *string    `json:"arr_terminal"`
	ArrGate         *string    `json:"arr_gate"`
	DepDelayMin     *int       `json:"dep_delay_min"`
	ArrDelayMin     *int       `json:"arr_delay_min"`
	DepScheduledUTC *time.Time `json:"dep_scheduled_utc"`
	DepEstimatedUTC *time.Time `json:"dep_estimated_utc"`
	DepActualUTC    *time.Time `json:"dep_actual_utc"`
	ArrScheduledUTC *time.Time `json:"arr_scheduled_utc"`
	ArrEstimatedUTC *time.Time `json:"arr_estimated_utc"`
	ArrActualUTC    *time.Time `json:"arr_actual_utc"`
	LastSeenAt      time.Time  `json:"last_seen_at"`
	Source          string     `json:"source"`
}

// FlightUpdate carries a partial update; nil fields are left untouched.
type FlightUpdate struct {
	FlightDate      *string    `json:"flight_date"`
	FlightStatus    *string    `json:"flight_status"`
	AirlineIATA     *string    `json:"airline_iata"`
	FlightNumber    *string    `json:"flight_number"`
	FlightIATA      *string    `json:"flight_iata"`
	FlightICAO      *string    `json:"flight_icao"`
	DepIATA         *string    `json:"dep_iata"`
	ArrIATA         *string    `json:"arr_iata"`
	DepTerminal     *string    `json:"dep_terminal"`
	DepGate         *string    `json:"dep_gate"`
	ArrTerminal     *string    `json:"arr_terminal"`
	ArrGate         *string    `json:"arr_gate"`
	DepDelayMin     *int       `json:"dep_delay_min"`
	ArrDelayMin     *int       `json:"arr_delay_min"`
	DepScheduledUTC *time.Time `json:"dep_scheduled_utc"`
	DepEstimatedUTC *time.Time `json:"dep_estimated_utc"`
	DepActualUTC    *time.Time `json:"dep_actual_utc"`
	ArrScheduledUTC *time.Time `json:"arr_scheduled_utc"`
	ArrEstimatedUTC *time.Time `json:"arr_estimated_utc"`
	ArrActualUTC    *time.Time `json:"arr_actual_utc"`
	Source          *string    `json:"source"`
}

// FlightFilter narrows a fact-table listing.
type FlightFilter struct {
	DepIATA    string
	ArrIATA    string
	FlightDate string
	Status     string
}
