package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serenity/internal/models/db_models"
	"serenity/pkg/utils"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id, ownerID uuid.UUID) (*db_models.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	// Unread first, newest first within each group.
	err := r.db.WithContext(ctx).
		Where("account_id = ?", ownerID).
		Order("read ASC").
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, ownerID uuid.UUID) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ? AND account_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}

	notification.Read = true
	if err := r.db.WithContext(ctx).Save(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}
