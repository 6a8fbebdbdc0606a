package controllers_fx

import (
	"go.uber.org/fx"
	"serenity/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewNotificationController),
	fx.Provide(controllers.NewDashboardController))
