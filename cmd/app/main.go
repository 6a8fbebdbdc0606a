package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"serenity/cmd/fx/account_fx"
	"serenity/cmd/fx/controllers_fx"
	"serenity/cmd/fx/dashboard_fx"
	"serenity/cmd/fx/db_fx"
	"serenity/cmd/fx/memcache_fx"
	"serenity/cmd/fx/notification_fx"
	"serenity/cmd/fx/onboarding_fx"
	"serenity/cmd/fx/session_fx"
	"serenity/internal/api/controllers"
	mem "serenity/pkg/memcache"
	"serenity/pkg/middleware"
	"serenity/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}
	utils.SetSigningSecret(os.Getenv("JWT_SECRET"))

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		onboarding_fx.Module,
		session_fx.Module,
		notification_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	attempts mem.AttemptStore,
	authController *controllers.AuthController,
	sessionController *controllers.SessionController,
	notificationController *controllers.NotificationController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, attempts, authController, sessionController, notificationController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attempts mem.AttemptStore,
	authController *controllers.AuthController,
	sessionController *controllers.SessionController,
	notificationController *controllers.NotificationController,
	dashboardController *controllers.DashboardController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", middleware.AuthRateLimitMiddleware(attempts), authController.SignUp)
	authGroup.POST("/login", middleware.AuthRateLimitMiddleware(attempts), authController.Login)

	authedAuth := authGroup.Group("", middleware.JWTAuthMiddleware())
	authedAuth.GET("/me", authController.Me)
	authedAuth.PUT("/profile", authController.UpdateProfile)
	authedAuth.PUT("/change-password", authController.ChangePassword)
	authedAuth.POST("/logout", authController.Logout)

	authed := r.Group("", middleware.JWTAuthMiddleware())
	authed.GET("/dashboard", dashboardController.GetDashboard)

	sessionsGroup := authed.Group("/sessions")
	sessionsGroup.GET("", sessionController.ListSessions)
	sessionsGroup.POST("", sessionController.CreateSession)
	sessionsGroup.PUT("/:id/feedback", sessionController.SubmitFeedback)

	notificationsGroup := authed.Group("/notifications")
	notificationsGroup.GET("", notificationController.ListNotifications)
	notificationsGroup.PUT("/:id/read", notificationController.MarkRead)
}
