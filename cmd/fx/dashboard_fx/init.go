package dashboard_fx

import (
	"go.uber.org/fx"
	"serenity/internal/repositories"
	"serenity/internal/services"
)

var Module = fx.Provide(
	provideDashboardService,
)

func provideDashboardService(
	accountRepo repositories.AccountRepository,
	progressRepo repositories.ProgressRepository,
	sessionRepo repositories.SessionRepository,
	notificationRepo repositories.NotificationRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(accountRepo, progressRepo, sessionRepo, notificationRepo)
}
