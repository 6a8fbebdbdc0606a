package services

import (
	"context"

	"github.com/google/uuid"

	"serenity/internal/models/response_models"
	"serenity/internal/repositories"
	"serenity/pkg/utils"
)

const upcomingSessionsLimit = 5

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error)
}

type DashboardService struct {
	accountRepo      repositories.AccountRepository
	progressRepo     repositories.ProgressRepository
	sessionRepo      repositories.SessionRepository
	notificationRepo repositories.NotificationRepository
}

func NewDashboardService(
	accountRepo repositories.AccountRepository,
	progressRepo repositories.ProgressRepository,
	sessionRepo repositories.SessionRepository,
	notificationRepo repositories.NotificationRepository,
) DashboardServiceInterface {
	return &DashboardService{
		accountRepo:      accountRepo,
		progressRepo:     progressRepo,
		sessionRepo:      sessionRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *DashboardService) BuildDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.DashboardResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.Active {
		return nil, utils.ErrUnauthorized
	}

	// Nil for practitioners; they carry no treatment plan.
	progress, err := s.progressRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	notifications, err := s.notificationRepo.ListByOwner(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	upcoming, err := s.sessionRepo.ListUpcoming(ctx, accountID, upcomingSessionsLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.DashboardResponse{
		Progress:         progress,
		Notifications:    notifications,
		UpcomingSessions: upcoming,
		WellnessMetrics:  account.Wellness,
	}, nil
}
