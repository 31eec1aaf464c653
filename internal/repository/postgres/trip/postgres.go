package trip

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "trip-planner-go/internal/domain/trip"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("position asc, name asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "initials", "color", "avatar_url", "avatar_options", "position"}),
		}).
		Create(user).Error
}

func (r *PostgresRepository) UpdateUserAvatar(ctx context.Context, userID string, avatarURL *string) (*domain.User, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", userID).
		Update("avatar_url", avatarURL)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.GetUser(ctx, userID)
}

func (r *PostgresRepository) ListAvailability(ctx context.Context) ([]domain.Availability, error) {
	var records []domain.Availability
	if err := r.db.WithContext(ctx).Order("user_id asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) GetAvailability(ctx context.Context, userID string) (*domain.Availability, error) {
	var record domain.Availability
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) UpsertAvailability(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	record := *availability
	record.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"available_start",
				"available_end",
				"preferred_start",
				"preferred_end",
				"preferred_length_days",
				"updated_at",
			}),
		}).
		Create(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *PostgresRepository) IsSeeded(ctx context.Context, key string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.SeedMarker{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) MarkSeeded(ctx context.Context, key string) error {
	marker := domain.SeedMarker{Key: key, SeededAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).
		Create(&marker).Error
}
