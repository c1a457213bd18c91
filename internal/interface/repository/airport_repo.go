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

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Create inserts a new airport dimension row
func (r *GormAirportRepository) Create(ctx context.Context, airport *entity.Airport) (*entity.Airport, error) {
	row := &DimAirport{
		AirportIATA: airport.AirportIATA,
		AirportName: airport.AirportName,
		Timezone:    airport.Timezone,
		ICAO:        airport.ICAO,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to create airport: %w", err)
	}
	return airportToEntity(row), nil
}

// GetByIATA finds an airport by IATA code
func (r *GormAirportRepository) GetByIATA(ctx context.Context, iata string) (*entity.Airport, error) {
	var row DimAirport
	result := r.db.WithContext(ctx).Where("airport_iata = ?", iata).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: airport %s", entity.ErrNotFound, iata)
		}
		return nil, result.Error
	}
	return airportToEntity(&row), nil
}

// List returns a page of airports ordered by IATA code, plus the total count
func (r *GormAirportRepository) List(ctx context.Context, limit, offset int) ([]entity.Airport, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&DimAirport{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []DimAirport
	err := r.db.WithContext(ctx).
		Order("airport_iata").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	airports := make([]entity.Airport, len(rows))
	for i := range rows {
		airports[i] = *airportToEntity(&rows[i])
	}
	return airports, total, nil
}

// Update applies the non-nil fields of update and refreshes updated_at
func (r *GormAirportRepository) Update(ctx context.Context, iata string, update *entity.AirportUpdate) (*entity.Airport, error) {
	fields := map[string]interface{}{}
	if update.AirportName != nil {
		fields["airport_name"] = *update.AirportName
	}
	if update.Timezone != nil {
		fields["timezone"] = *update.Timezone
	}
	if update.ICAO != nil {
		fields["icao"] = *update.ICAO
	}
	if len(fields) == 0 {
		return r.GetByIATA(ctx, iata)
	}
	fields["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&DimAirport{}).
		Where("airport_iata = ?", iata).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: airport %s", entity.ErrNotFound, iata)
	}
	return r.GetByIATA(ctx, iata)
}

// Delete removes an airport dimension row
func (r *GormAirportRepository) Delete(ctx context.Context, iata string) error {
	result := r.db.WithContext(ctx).Where("airport_iata = ?", iata).Delete(&DimAirport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: airport %s", entity.ErrNotFound, iata)
	}
	return nil
}
