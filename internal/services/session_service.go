package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"serenity/internal/models/db_models"
	"serenity/internal/models/request_models"
	"serenity/internal/models/response_models"
	"serenity/internal/repositories"
	"serenity/pkg/utils"
)

// SessionServiceInterface drives the therapy-session state machine:
// scheduled -> in-progress -> completed, or scheduled -> cancelled.
type SessionServiceInterface interface {
	CreateSession(ctx context.Context, ownerID uuid.UUID, request request_models.CreateSessionRequest) (*db_models.TherapySession, error)
	ListSessions(ctx context.Context, ownerID uuid.UUID) ([]db_models.TherapySession, error)
	SubmitFeedback(ctx context.Context, ownerID, sessionID uuid.UUID, request request_models.FeedbackRequest) (*response_models.FeedbackResponse, error)
}

type SessionService struct {
	sessionRepo      repositories.SessionRepository
	notificationRepo repositories.NotificationRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository, notificationRepo repositories.NotificationRepository) SessionServiceInterface {
	return &SessionService{
		sessionRepo:      sessionRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, ownerID uuid.UUID, request request_models.CreateSessionRequest) (*db_models.TherapySession, error) {
	if fields := request.Validate(); len(fields) > 0 {
		return nil, utils.NewValidationError(fields)
	}

	session := &db_models.TherapySession{
		AccountID:       ownerID,
		Name:            request.Name,
		TherapyType:     request.TherapyType,
		ScheduledDate:   request.ScheduledDate,
		ScheduledTime:   request.ScheduledTime,
		DurationMinutes: request.DurationMinutes,
		Status:          db_models.SessionStatusScheduled,
		Progress:        0,
	}
	if request.PractitionerID != "" {
		practitionerID, err := uuid.Parse(request.PractitionerID)
		if err != nil {
			return nil, utils.NewValidationError([]string{"practitioner_id must be a valid id"})
		}
		session.PractitionerID = &practitionerID
	}

	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.notifySafely(ctx, &db_models.Notification{
		AccountID: ownerID,
		Title:     "Session scheduled",
		Message:   fmt.Sprintf("%s is booked for %s at %s.", session.Name, session.ScheduledDate, session.ScheduledTime),
		Kind:      db_models.NotificationKindAppointment,
		Priority:  db_models.NotificationPriorityMedium,
	})

	return session, nil
}

func (s *SessionService) ListSessions(ctx context.Context, ownerID uuid.UUID) ([]db_models.TherapySession, error) {
	sessions, err := s.sessionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sessions, nil
}

func (s *SessionService) SubmitFeedback(ctx context.Context, ownerID, sessionID uuid.UUID, request request_models.FeedbackRequest) (*response_models.FeedbackResponse, error) {
	if fields := request.Validate(); len(fields) > 0 {
		return nil, utils.NewValidationError(fields)
	}

	session, record, err := s.sessionRepo.CompleteWithFeedback(ctx, sessionID, ownerID, db_models.SessionFeedback{
		Wellness: request.Wellness,
		Energy:   request.Energy,
		Sleep:    request.Sleep,
		Comments: request.Comments,
	})
	if err != nil {
		return nil, err
	}

	s.notifySafely(ctx, &db_models.Notification{
		AccountID: ownerID,
		Title:     "Session completed",
		Message:   fmt.Sprintf("Feedback recorded for %s. You have completed %d of %d sessions.", session.Name, record.CompletedSessions, record.TotalSessions),
		Kind:      db_models.NotificationKindPost,
		Priority:  db_models.NotificationPriorityLow,
	})

	return &response_models.FeedbackResponse{
		Session:  session,
		Progress: record,
	}, nil
}

// notifySafely logs and drops notification failures; they never undo the
// domain mutation they decorate.
func (s *SessionService) notifySafely(ctx context.Context, notification *db_models.Notification) {
	if err := s.notificationRepo.Insert(ctx, notification); err != nil {
		log.Printf("Notification insert failed for account %s: %v", notification.AccountID, err)
	}
}
