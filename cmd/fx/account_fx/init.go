package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"serenity/internal/repositories"
	"serenity/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideIdentityService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideIdentityService(accountRepo repositories.AccountRepository, onboarding services.OnboardingServiceInterface) services.IdentityServiceInterface {
	return services.NewIdentityService(accountRepo, onboarding)
}
