package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
)

// GormIngestStore implements the IngestStore interface on the warehouse
// database. One batch = one transaction: commit when the batch function
// returns nil, rollback on error or panic.
type GormIngestStore struct {
	db *gorm.DB
}

// NewGormIngestStore creates a new GORM ingest store
func NewGormIngestStore(db *gorm.DB) repository.IngestStore {
	return &GormIngestStore{
		db: db,
	}
}

// RunBatch runs fn inside a single warehouse transaction.
func (s *GormIngestStore) RunBatch(ctx context.Context, fn func(tx repository.IngestTx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormIngestTx{tx: tx})
	})
}

// gormIngestTx is the per-batch transaction handle handed to the
// orchestrator. Every write goes through the one open transaction.
type gormIngestTx struct {
	tx *gorm.DB
}

// ArchiveRaw appends one audit row. The row is never updated afterwards.
func (t *gormIngestTx) ArchiveRaw(ctx context.Context, record *entity.RawRecord) error {
	row := &RawAvstackFlight{
		IngestID:   record.IngestID,
		IngestedAt: record.IngestedAt,
		FlightDate: record.FlightDate,
		FlightIATA: record.FlightIATA,
		DepIATA:    record.DepIATA,
		ArrIATA:    record.ArrIATA,
		Record:     string(record.Record),
		Source:     record.Source,
	}
	if err := t.tx.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to archive raw record: %w", err)
	}
	return nil
}

// flightMutableColumns are every fact column overwritten on a repeat
// sighting. Incoming nulls overwrite stored values (full-column overwrite).
var flightMutableColumns = []string{
	"flight_date", "flight_status", "airline_iata", "flight_number",
	"flight_iata", "flight_icao", "dep_iata", "arr_iata",
	"dep_terminal", "dep_gate", "arr_terminal", "arr_gate",
	"dep_delay_min", "arr_delay_min",
	"dep_scheduled_utc", "dep_estimated_utc", "dep_actual_utc",
	"arr_scheduled_utc", "arr_estimated_utc", "arr_actual_utc",
	"last_seen_at", "source",
}

// UpsertFlight inserts or overwrites the fact row for the flight's natural
// key as one INSERT .. ON CONFLICT DO UPDATE statement, so two batches
// racing on the same key cannot interleave a read with a write.
func (t *gormIngestTx) UpsertFlight(ctx context.Context, flight *entity.Flight) error {
	err := t.tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "flight_nk"}},
		DoUpdates: clause.AssignmentColumns(flightMutableColumns),
	}).Create(flightToModel(flight)).Error
	if err != nil {
		return fmt.Errorf("failed to upsert flight %s: %w", flight.FlightNK, err)
	}
	return nil
}

// UpsertAirport inserts or overwrites one airport dimension row.
func (t *gormIngestTx) UpsertAirport(ctx context.Context, airport *entity.Airport) error {
	row := &DimAirport{
		AirportIATA: airport.AirportIATA,
		AirportName: airport.AirportName,
		Timezone:    airport.Timezone,
		ICAO:        airport.ICAO,
		UpdatedAt:   time.Now().UTC(),
	}
	err := t.tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "airport_iata"}},
		DoUpdates: clause.AssignmentColumns([]string{"airport_name", "timezone", "icao", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert airport %s: %w", airport.AirportIATA, err)
	}
	return nil
}

// UpsertAirline inserts or overwrites one airline dimension row.
func (t *gormIngestTx) UpsertAirline(ctx context.Context, airline *entity.Airline) error {
	row := &DimAirline{
		AirlineIATA: airline.AirlineIATA,
		ICAO:        airline.ICAO,
		AirlineName: airline.AirlineName,
		UpdatedAt:   time.Now().UTC(),
	}
	err := t.tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "airline_iata"}},
		DoUpdates: clause.AssignmentColumns([]string{"icao", "airline_name", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert airline %s: %w", airline.AirlineIATA, err)
	}
	return nil
}
