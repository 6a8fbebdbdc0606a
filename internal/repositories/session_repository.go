package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"serenity/internal/models/db_models"
	"serenity/pkg/utils"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *db_models.TherapySession) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TherapySession, error)
	ListUpcoming(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.TherapySession, error)

	// CompleteWithFeedback applies the whole feedback sequence as one
	// transaction: session completion, progress recompute, score history
	// append, and account snapshot refresh. Progress rows are locked so
	// racing submissions for the same account cannot lose updates.
	CompleteWithFeedback(ctx context.Context, sessionID, ownerID uuid.UUID, feedback db_models.SessionFeedback) (*db_models.TherapySession, *db_models.ProgressRecord, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, session *db_models.TherapySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TherapySession, error) {
	var sessions []db_models.TherapySession
	err := r.db.WithContext(ctx).
		Where("account_id = ?", ownerID).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) ListUpcoming(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.TherapySession, error) {
	var sessions []db_models.TherapySession
	today := time.Now().Format(utils.ScheduleDateLayout)
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND status = ? AND scheduled_date >= ?", ownerID, db_models.SessionStatusScheduled, today).
		Order("scheduled_date ASC, scheduled_time ASC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) CompleteWithFeedback(ctx context.Context, sessionID, ownerID uuid.UUID, feedback db_models.SessionFeedback) (*db_models.TherapySession, *db_models.ProgressRecord, error) {
	var session db_models.TherapySession
	var record db_models.ProgressRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, "id = ? AND account_id = ?", sessionID, ownerID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNotFound
			}
			return err
		}
		if session.Status.Terminal() {
			return utils.ErrSessionClosed
		}

		now := time.Now().Unix()
		session.Status = db_models.SessionStatusCompleted
		session.Progress = 100
		session.Feedback = &feedback
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, "account_id = ?", ownerID).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			// Onboarding is best-effort, so the record may be missing;
			// backfill a fresh plan before counting this completion.
			record = db_models.ProgressRecord{
				AccountID:     ownerID,
				TotalSessions: db_models.DefaultTotalSessions,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		record.ApplyCompletedSession(db_models.WellnessScoreEntry{
			Date:     now,
			Wellness: feedback.Wellness,
			Energy:   feedback.Energy,
			Sleep:    feedback.Sleep,
		})
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		var account db_models.Account
		if err := tx.First(&account, "id = ?", ownerID).Error; err != nil {
			return err
		}
		account.Wellness = db_models.WellnessSnapshot{
			Wellness: feedback.Wellness * 10,
			Energy:   feedback.Energy * 10,
			Sleep:    feedback.Sleep * 10,
		}
		return tx.Save(&account).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &session, &record, nil
}
