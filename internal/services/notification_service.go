package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"serenity/internal/models/db_models"
	"serenity/internal/repositories"
	"serenity/pkg/utils"
)

type NotificationServiceInterface interface {
	ListNotifications(ctx context.Context, ownerID uuid.UUID) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, ownerID, notificationID uuid.UUID) (*db_models.Notification, error)
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) ListNotifications(ctx context.Context, ownerID uuid.UUID) ([]db_models.Notification, error) {
	notifications, err := s.notificationRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, ownerID, notificationID uuid.UUID) (*db_models.Notification, error) {
	notification, err := s.notificationRepo.MarkRead(ctx, notificationID, ownerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return notification, nil
}
