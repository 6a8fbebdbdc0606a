package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"serenity/internal/models/db_models"
	"serenity/internal/repositories"
	"serenity/pkg/utils"
)

// OnboardingServiceInterface seeds the initial domain records for a fresh
// account. Invoked exactly once, synchronously inside signup.
type OnboardingServiceInterface interface {
	SeedAccount(ctx context.Context, account *db_models.Account) error
}

type OnboardingService struct {
	accountRepo      repositories.AccountRepository
	progressRepo     repositories.ProgressRepository
	sessionRepo      repositories.SessionRepository
	notificationRepo repositories.NotificationRepository
}

func NewOnboardingService(
	accountRepo repositories.AccountRepository,
	progressRepo repositories.ProgressRepository,
	sessionRepo repositories.SessionRepository,
	notificationRepo repositories.NotificationRepository,
) OnboardingServiceInterface {
	return &OnboardingService{
		accountRepo:      accountRepo,
		progressRepo:     progressRepo,
		sessionRepo:      sessionRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *OnboardingService) SeedAccount(ctx context.Context, account *db_models.Account) error {
	if account.AccountType == db_models.AccountTypePractitioner {
		return s.notificationRepo.Insert(ctx, &db_models.Notification{
			AccountID: account.ID,
			Title:     "Welcome to Serenity",
			Message:   "Your practitioner workspace is ready. Patients you take on will appear here.",
			Kind:      db_models.NotificationKindGeneral,
			Priority:  db_models.NotificationPriorityMedium,
		})
	}
	return s.seedPatient(ctx, account)
}

func (s *OnboardingService) seedPatient(ctx context.Context, account *db_models.Account) error {
	wellness := 7 + rand.Intn(3) // 7-9
	energy := 7 + rand.Intn(3)   // 7-9
	sleep := 8 + rand.Intn(3)    // 8-10

	record := &db_models.ProgressRecord{
		AccountID:       account.ID,
		OverallProgress: 10 + rand.Float64()*20, // [10,30)
		TotalSessions:   db_models.DefaultTotalSessions,
		NextMilestone:   "Complete your first session",
		ScoreHistory: []db_models.WellnessScoreEntry{{
			Date:     time.Now().Unix(),
			Wellness: wellness,
			Energy:   energy,
			Sleep:    sleep,
		}},
	}
	if err := s.progressRepo.Insert(ctx, record); err != nil {
		return fmt.Errorf("seed progress record: %w", err)
	}

	account.Wellness = db_models.WellnessSnapshot{
		Wellness: wellness * 10,
		Energy:   energy * 10,
		Sleep:    sleep * 10,
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("seed wellness snapshot: %w", err)
	}

	// Two starter sessions: consultation tomorrow, first therapy session
	// the day after. Inserted directly so they do not emit appointment
	// notifications of their own.
	seedSessions := []db_models.TherapySession{
		{
			AccountID:       account.ID,
			Name:            "Initial Consultation",
			TherapyType:     "consultation",
			ScheduledDate:   utils.ScheduleDateFromNow(1),
			ScheduledTime:   "10:00",
			DurationMinutes: 60,
			Status:          db_models.SessionStatusScheduled,
		},
		{
			AccountID:       account.ID,
			Name:            "Therapy Session",
			TherapyType:     "therapy",
			ScheduledDate:   utils.ScheduleDateFromNow(2),
			ScheduledTime:   "14:00",
			DurationMinutes: 45,
			Status:          db_models.SessionStatusScheduled,
		},
	}
	for i := range seedSessions {
		if err := s.sessionRepo.Insert(ctx, &seedSessions[i]); err != nil {
			return fmt.Errorf("seed session %q: %w", seedSessions[i].Name, err)
		}
	}

	return s.notificationRepo.Insert(ctx, &db_models.Notification{
		AccountID: account.ID,
		Title:     "Welcome to Serenity",
		Message:   "Your treatment plan is ready. Your initial consultation is booked for tomorrow.",
		Kind:      db_models.NotificationKindGeneral,
		Priority:  db_models.NotificationPriorityHigh,
	})
}
