package trip

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "trip-planner-go/internal/domain/trip"
)

func (r *PostgresRepository) ListCities(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	if err := r.db.WithContext(ctx).Order("created_at asc, name asc").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *PostgresRepository) GetCity(ctx context.Context, cityID string) (*domain.City, error) {
	var city domain.City
	if err := r.db.WithContext(ctx).Where("id = ?", cityID).First(&city).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *PostgresRepository) InsertCity(ctx context.Context, city *domain.City) (*domain.City, error) {
	record := *city
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) ListAttractions(ctx context.Context) ([]domain.Attraction, error) {
	var attractions []domain.Attraction
	if err := r.db.WithContext(ctx).Order("created_at asc, name asc").Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *PostgresRepository) GetAttraction(ctx context.Context, attractionID string) (*domain.Attraction, error) {
	var attraction domain.Attraction
	if err := r.db.WithContext(ctx).Where("id = ?", attractionID).First(&attraction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, err
	}
	return &attraction, nil
}

func (r *PostgresRepository) InsertAttraction(ctx context.Context, attraction *domain.Attraction) (*domain.Attraction, error) {
	record := *attraction
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
