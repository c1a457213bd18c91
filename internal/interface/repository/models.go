package repository

import (
	"time"

	"gorm.io/gorm"

	"flightwarehouse-service/internal/domain/entity"
)

// GORM models for the warehouse tables. The raw archive is append-only;
// the dimensions are keyed by IATA code; the fact table is keyed by the
// flight natural key. Timestamp columns are zone-less (naive UTC).

// RawAvstackFlight is one audit row per fetched provider record
type RawAvstackFlight struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	IngestID   string    `gorm:"column:ingest_id;index"`
	IngestedAt time.Time `gorm:"column:ingested_at;type:timestamp"`
	FlightDate *string   `gorm:"column:flight_date"`
	FlightIATA *string   `gorm:"column:flight_iata"`
	DepIATA    *string   `gorm:"column:dep_iata"`
	ArrIATA    *string   `gorm:"column:arr_iata"`
	Record     string    `gorm:"column:record;type:jsonb"`
	Source     string    `gorm:"column:source"`
}

// TableName overrides the default table name
func (RawAvstackFlight) TableName() string {
	return "raw_avstack_flights"
}

// DimAirport is one airport dimension row
type DimAirport struct {
	AirportIATA string    `gorm:"column:airport_iata;primaryKey;size:4"`
	AirportName *string   `gorm:"column:airport_name"`
	Timezone    *string   `gorm:"column:timezone"`
	ICAO        *string   `gorm:"column:icao"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp"`
}

// TableName overrides the default table name
func (DimAirport) TableName() string {
	return "dim_airport"
}

// DimAirline is one airline dimension row
type DimAirline struct {
	AirlineIATA string    `gorm:"column:airline_iata;primaryKey;size:4"`
	ICAO        *string   `gorm:"column:icao"`
	AirlineName *string   `gorm:"column:airline_name"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamp"`
}

// TableName overrides the default table name
func (DimAirline) TableName() string {
	return "dim_airline"
}

// FactFlight is one flight fact row
type FactFlight struct {
	FlightNK        string     `gorm:"column:flight_nk;primaryKey"`
	FlightDate      string     `gorm:"column:flight_date;index"`
	FlightStatus    *string    `gorm:"column:flight_status"`
	AirlineIATA     *string    `gorm:"column:airline_iata;index"`
	FlightNumber    *string    `gorm:"column:flight_number"`
	FlightIATA      string     `gorm:"column:flight_iata"`
	FlightICAO      *string    `gorm:"column:flight_icao"`
	DepIATA         *string    `gorm:"column:dep_iata;index"`
	ArrIATA         *string    `gorm:"column:arr_iata;index"`
	DepTerminal     *string    `gorm:"column:dep_terminal"`
	DepGate         *string    `gorm:"column:dep_gate"`
	ArrTerminal     *string    `gorm:"column:arr_terminal"`
	ArrGate         *string    `gorm:"column:arr_gate"`
	DepDelayMin     *int       `gorm:"column:dep_delay_min"`
	ArrDelayMin     *int       `gorm:"column:arr_delay_min"`
	DepScheduledUTC *time.Time `gorm:"column:dep_scheduled_utc;type:timestamp"`
	DepEstimatedUTC *time.Time `gorm:"column:dep_estimated_utc;type:timestamp"`
	DepActualUTC    *time.Time `gorm:"column:dep_actual_utc;type:timestamp"`
	ArrScheduledUTC *time.Time `gorm:"column:arr_scheduled_utc;type:timestamp"`
	ArrEstimatedUTC *time.Time `gorm:"column:arr_estimated_utc;type:timestamp"`
	ArrActualUTC    *time.Time `gorm:"column:arr_actual_utc;type:timestamp"`
	LastSeenAt      time.Time  `gorm:"column:last_seen_at;type:timestamp;index"`
	Source          string     `gorm:"column:source"`
}

// TableName overrides the default table name
func (FactFlight) TableName() string {
	return "fact_flight"
}

// AutoMigrate creates or updates the warehouse schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&RawAvstackFlight{},
		&DimAirport{},
		&DimAirline{},
		&FactFlight{},
	)
}

func flightToModel(f *entity.Flight) *FactFlight {
	return &FactFlight{
		FlightNK:        f.FlightNK,
		FlightDate:      f.FlightDate,
		FlightStatus:    f.FlightStatus,
		AirlineIATA:     f.AirlineIATA,
		FlightNumber:    f.FlightNumber,
		FlightIATA:      f.FlightIATA,
		FlightICAO:      f.FlightICAO,
		DepIATA:         f.DepIATA,
		ArrIATA:         f.ArrIATA,
		DepTerminal:     f.DepTerminal,
		DepGate:         f.DepGate,
		ArrTerminal:     f.ArrTerminal,
		ArrGate:         f.ArrGate,
		DepDelayMin:     f.DepDelayMin,
		ArrDelayMin:     f.ArrDelayMin,
		DepScheduledUTC: f.DepScheduledUTC,
		DepEstimatedUTC: f.DepEstimatedUTC,
		DepActualUTC:    f.DepActualUTC,
		ArrScheduledUTC: f.ArrScheduledUTC,
		ArrEstimatedUTC: f.ArrEstimatedUTC,
		ArrActualUTC:    f.ArrActualUTC,
		LastSeenAt:      f.LastSeenAt,
		Source:          f.Source,
	}
}

func flightToEntity(m *FactFlight) *entity.Flight {
	return &entity.Flight{
		FlightNK:        m.FlightNK,
		FlightDate:      m.FlightDate,
		FlightStatus:    m.FlightStatus,
		AirlineIATA:     m.AirlineIATA,
		FlightNumber:    m.FlightNumber,
		FlightIATA:      m.FlightIATA,
		FlightICAO:      m.FlightICAO,
		DepIATA:         m.DepIATA,
		ArrIATA:         m.ArrIATA,
		DepTerminal:     m.DepTerminal,
		DepGate:         m.DepGate,
		ArrTerminal:     m.ArrTerminal,
		ArrGate:         m.ArrGate,
		DepDelayMin:     m.DepDelayMin,
		ArrDelayMin:     m.ArrDelayMin,
		DepScheduledUTC: m.DepScheduledUTC,
		DepEstimatedUTC: m.DepEstimatedUTC,
		DepActualUTC:    m.DepActualUTC,
		ArrScheduledUTC: m.ArrScheduledUTC,
		ArrEstimatedUTC: m.ArrEstimatedUTC,
		ArrActualUTC:    m.ArrActualUTC,
		LastSeenAt:      m.LastSeenAt,
		Source:          m.Source,
	}
}

func airportToEntity(m *DimAirport) *entity.Airport {
	return &entity.Airport{
		AirportIATA: m.AirportIATA,
		AirportName: m.AirportName,
		Timezone:    m.Timezone,
		ICAO:        m.ICAO,
		UpdatedAt:   m.UpdatedAt,
	}
}

func airlineToEntity(m *DimAirline) *entity.Airline {
	return &entity.Airline{
		AirlineIATA: m.AirlineIATA,
		ICAO:        m.ICAO,
		AirlineName: m.AirlineName,
		UpdatedAt:   m.UpdatedAt,
	}
}
