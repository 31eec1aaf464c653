package trip

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "trip-planner-go/internal/domain/trip"
)

func (r *PostgresRepository) ListUserCityDays(ctx context.Context) ([]domain.UserCityDays, error) {
	var records []domain.UserCityDays
	if err := r.db.WithContext(ctx).Order("user_id asc, city_id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) UpsertUserCityDays(ctx context.Context, userID, cityID string, days int) (*domain.UserCityDays, error) {
	if days <= 0 {
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND city_id = ?", userID, cityID).
			Delete(&domain.UserCityDays{}).Error
		return nil, err
	}

	record := domain.UserCityDays{
		UserID:    userID,
		CityID:    cityID,
		Days:      days,
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "city_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"days", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) ListVotes(ctx context.Context) ([]domain.Vote, error) {
	var votes []domain.Vote
	if err := r.db.WithContext(ctx).Order("attraction_id asc, user_id asc").Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

func (r *PostgresRepository) GetVote(ctx context.Context, userID, attractionID string) (*domain.Vote, error) {
	var vote domain.Vote
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND attraction_id = ?", userID, attractionID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *PostgresRepository) UpsertVote(ctx context.Context, userID, attractionID string, value int) (*domain.Vote, error) {
	if value == 0 {
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND attraction_id = ?", userID, attractionID).
			Delete(&domain.Vote{}).Error
		return nil, err
	}

	vote := domain.Vote{
		UserID:       userID,
		AttractionID: attractionID,
		Value:        value,
		UpdatedAt:    time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "attraction_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote", "updated_at"}),
		}).
		Create(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

func (r *PostgresRepository) ListUserBudgets(ctx context.Context) ([]domain.UserBudget, error) {
	var budgets []domain.UserBudget
	if err := r.db.WithContext(ctx).Order("user_id asc").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *PostgresRepository) GetUserBudget(ctx context.Context, userID string) (*domain.UserBudget, error) {
	var budget domain.UserBudget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *PostgresRepository) UpsertUserBudget(ctx context.Context, budget *domain.UserBudget) (*domain.UserBudget, error) {
	record := *budget
	record.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"flight_tier",
				"hotels_tier",
				"food_tier",
				"activities_tier",
				"shopping_tier",
				"updated_at",
			}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, err
	}
	return r.GetUserBudget(ctx, record.UserID)
}
