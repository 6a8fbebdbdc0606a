package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity/internal/models/db_models"
)

type ProgressRepository interface {
	Insert(ctx context.Context, record *db_models.ProgressRecord) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.ProgressRecord, error)
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Insert(ctx context.Context, record *db_models.ProgressRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *progressRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.ProgressRecord, error) {
	var record db_models.ProgressRecord
	err := r.db.WithContext(ctx).First(&record, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}
