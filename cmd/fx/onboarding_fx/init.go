package onboarding_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"serenity/internal/repositories"
	"serenity/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo, provideOnboardingService)

func provideProgressRepo(db *gorm.DB) repositories.ProgressRepository {
	return repositories.NewProgressRepository(db)
}

func provideOnboardingService(
	accountRepo repositories.AccountRepository,
	progressRepo repositories.ProgressRepository,
	sessionRepo repositories.SessionRepository,
	notificationRepo repositories.NotificationRepository,
) services.OnboardingServiceInterface {
	return services.NewOnboardingService(accountRepo, progressRepo, sessionRepo, notificationRepo)
}
