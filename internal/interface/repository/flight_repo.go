package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/domain/repository"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Create inserts a new fact row with last_seen_at set to now
func (r *GormFlightRepository) Create(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	row := flightToModel(flight)
	row.LastSeenAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}
	return flightToEntity(row), nil
}

// GetByNK finds a flight by natural key
func (r *GormFlightRepository) GetByNK(ctx context.Context, flightNK string) (*entity.Flight, error) {
	var row FactFlight
	result := r.db.WithContext(ctx).Where("flight_nk = ?", flightNK).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: flight %s", entity.ErrNotFound, flightNK)
		}
		return nil, result.Error
	}
	return flightToEntity(&row), nil
}

// List returns a filtered page of flights ordered by flight date descending
func (r *GormFlightRepository) List(ctx context.Context, filter entity.FlightFilter, limit, offset int) ([]entity.Flight, int64, error) {
	query := r.db.WithContext(ctx).Model(&FactFlight{})
	if filter.DepIATA != "" {
		query = query.Where("dep_iata = ?", filter.DepIATA)
	}
	if filter.ArrIATA != "" {
		query = query.Where("arr_iata = ?", filter.ArrIATA)
	}
	if filter.FlightDate != "" {
		query = query.Where("flight_date = ?", filter.FlightDate)
	}
	if filter.Status != "" {
		query = query.Where("flight_status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []FactFlight
	err := query.
		Order("flight_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	flights := make([]entity.Flight, len(rows))
	for i := range rows {
		flights[i] = *flightToEntity(&rows[i])
	}
	return flights, total, nil
}

// Update applies the non-nil fields of update and refreshes last_seen_at
func (r *GormFlightRepository) Update(ctx context.Context, flightNK string, update *entity.FlightUpdate) (*entity.Flight, error) {
	fields := map[string]interface{}{}
	setString := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			fields[col] = *v
		}
	}
	setTime := func(col string, v *time.Time) {
		if v != nil {
			fields[col] = *v
		}
	}

	setString("flight_date", update.FlightDate)
	setString("flight_status", update.FlightStatus)
	setString("airline_iata", update.AirlineIATA)
	setString("flight_number", update.FlightNumber)
	setString("flight_iata", update.FlightIATA)
	setString("flight_icao", update.FlightICAO)
	setString("dep_iata", update.DepIATA)
	setString("arr_iata", update.ArrIATA)
	setString("dep_terminal", update.DepTerminal)
	setString("dep_gate", update.DepGate)
	setString("arr_terminal", update.ArrTerminal)
	setString("arr_gate", update.ArrGate)
	setInt("dep_delay_min", update.DepDelayMin)
	setInt("arr_delay_min", update.ArrDelayMin)
	setTime("dep_scheduled_utc", update.DepScheduledUTC)
	setTime("dep_estimated_utc", update.DepEstimatedUTC)
	setTime("dep_actual_utc", update.DepActualUTC)
	setTime("arr_scheduled_utc", update.ArrScheduledUTC)
	setTime("arr_estimated_utc", update.ArrEstimatedUTC)
	setTime("arr_actual_utc", update.ArrActualUTC)
	setString("source", update.Source)

	if len(fields) == 0 {
		return r.GetByNK(ctx, flightNK)
	}
	fields["last_seen_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&FactFlight{}).
		Where("flight_nk = ?", flightNK).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: flight %s", entity.ErrNotFound, flightNK)
	}
	return r.GetByNK(ctx, flightNK)
}

// Delete removes a fact row
func (r *GormFlightRepository) Delete(ctx context.Context, flightNK string) error {
	result := r.db.WithContext(ctx).Where("flight_nk = ?", flightNK).Delete(&FactFlight{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: flight %s", entity.ErrNotFound, flightNK)
	}
	return nil
}

// ListRecent returns the most recently seen flights, newest first
func (r *GormFlightRepository) ListRecent(ctx context.Context, limit int) ([]entity.Flight, error) {
	var rows []FactFlight
	err := r.db.WithContext(ctx).
		Order("last_seen_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	flights := make([]entity.Flight, len(rows))
	for i := range rows {
		flights[i] = *flightToEntity(&rows[i])
	}
	return flights, nil
}
