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

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// Create inserts a new airline dimension row
func (r *GormAirlineRepository) Create(ctx context.Context, airline *entity.Airline) (*entity.Airline, error) {
	row := &DimAirline{
		AirlineIATA: airline.AirlineIATA,
		ICAO:        airline.ICAO,
		AirlineName: airline.AirlineName,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create airline: %w", err)
	}
	return airlineToEntity(row), nil
}

// GetByIATA finds an airline by IATA code
func (r *GormAirlineRepository) GetByIATA(ctx context.Context, iata string) (*entity.Airline, error) {
	var row DimAirline
	result := r.db.WithContext(ctx).Where("airline_iata = ?", iata).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: airline %s", entity.ErrNotFound, iata)
		}
		return nil, result.Error
	}
	return airlineToEntity(&row), nil
}

// List returns a page of airlines ordered by IATA code, plus the total count
func (r *GormAirlineRepository) List(ctx context.Context, limit, offset int) ([]entity.Airline, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DimAirline{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []DimAirline
	err := r.db.WithContext(ctx).
		Order("airline_iata").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	airlines := make([]entity.Airline, len(rows))
	for i := range rows {
		airlines[i] = *airlineToEntity(&rows[i])
	}
	return airlines, total, nil
}

// Update applies the non-nil fields of update and refreshes updated_at
func (r *GormAirlineRepository) Update(ctx context.Context, iata string, update *entity.AirlineUpdate) (*entity.Airline, error) {
	fields := map[string]interface{}{}
	if update.ICAO != nil {
		fields["icao"] = *update.ICAO
	}
	if update.AirlineName != nil {
		fields["airline_name"] = *update.AirlineName
	}
	if len(fields) == 0 {
		return r.GetByIATA(ctx, iata)
	}
	fields["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&DimAirline{}).
		Where("airline_iata = ?", iata).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: airline %s", entity.ErrNotFound, iata)
	}
	return r.GetByIATA(ctx, iata)
}

// Delete removes an airline dimension row
func (r *GormAirlineRepository) Delete(ctx context.Context, iata string) error {
	result := r.db.WithContext(ctx).Where("airline_iata = ?", iata).Delete(&DimAirline{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: airline %s", entity.ErrNotFound, iata)
	}
	return nil
}

// DistinctByAirport lists the airlines seen on flights touching an airport
func (r *GormAirlineRepository) DistinctByAirport(ctx context.Context, airportIATA string) ([]entity.AirlineAtAirport, error) {
	var rows []entity.AirlineAtAirport
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT a.airline_iata, a.airline_name
		FROM fact_flight f
		JOIN dim_airline a ON f.airline_iata = a.airline_iata
		WHERE f.dep_iata = ? OR f.arr_iata = ?
		ORDER BY a.airline_iata`,
		airportIATA, airportIATA).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list airlines for airport %s: %w", airportIATA, err)
	}
	return rows, nil
}
