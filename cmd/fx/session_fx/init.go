package session_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"serenity/internal/repositories"
	"serenity/internal/services"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideSessionService(sessionRepo repositories.SessionRepository, notificationRepo repositories.NotificationRepository) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, notificationRepo)
}
