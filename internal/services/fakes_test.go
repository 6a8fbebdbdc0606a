package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"serenity/internal/models/db_models"
	"serenity/pkg/utils"
)

// fakeStore is shared in-memory state behind the fake repositories.
type fakeStore struct {
	accounts      map[uuid.UUID]*db_models.Account
	progress      map[uuid.UUID]*db_models.ProgressRecord
	sessions      map[uuid.UUID]*db_models.TherapySession
	notifications []*db_models.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[uuid.UUID]*db_models.Account),
		progress: make(map[uuid.UUID]*db_models.ProgressRecord),
		sessions: make(map[uuid.UUID]*db_models.TherapySession),
	}
}

func (s *fakeStore) notificationsFor(accountID uuid.UUID) []db_models.Notification {
	var out []db_models.Notification
	for _, n := range s.notifications {
		if n.AccountID == accountID {
			out = append(out, *n)
		}
	}
	return out
}

type fakeAccountRepo struct {
	store     *fakeStore
	insertErr error
	findErr   error
	updateErr error
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.store.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.store.accounts[id], nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, account := range f.store.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.store.accounts[account.ID] = account
	return nil
}

type fakeProgressRepo struct {
	store     *fakeStore
	insertErr error
}

func (f *fakeProgressRepo) Insert(ctx context.Context, record *db_models.ProgressRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	f.store.progress[record.AccountID] = record
	return nil
}

func (f *fakeProgressRepo) FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.ProgressRecord, error) {
	return f.store.progress[accountID], nil
}

type fakeSessionRepo struct {
	store     *fakeStore
	insertErr error
}

func (f *fakeSessionRepo) Insert(ctx context.Context, session *db_models.TherapySession) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	f.store.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.TherapySession, error) {
	var out []db_models.TherapySession
	for _, session := range f.store.sessions {
		if session.AccountID == ownerID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) ListUpcoming(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.TherapySession, error) {
	var out []db_models.TherapySession
	for _, session := range f.store.sessions {
		if session.AccountID == ownerID && session.Status == db_models.SessionStatusScheduled {
			out = append(out, *session)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) CompleteWithFeedback(ctx context.Context, sessionID, ownerID uuid.UUID, feedback db_models.SessionFeedback) (*db_models.TherapySession, *db_models.ProgressRecord, error) {
	session, ok := f.store.sessions[sessionID]
	if !ok || session.AccountID != ownerID {
		return nil, nil, utils.ErrNotFound
	}
	if session.Status.Terminal() {
		return nil, nil, utils.ErrSessionClosed
	}

	session.Status = db_models.SessionStatusCompleted
	session.Progress = 100
	session.Feedback = &feedback

	record, ok := f.store.progress[ownerID]
	if !ok {
		record = &db_models.ProgressRecord{
			AccountID:     ownerID,
			TotalSessions: db_models.DefaultTotalSessions,
		}
		f.store.progress[ownerID] = record
	}
	record.ApplyCompletedSession(db_models.WellnessScoreEntry{
		Date:     time.Now().Unix(),
		Wellness: feedback.Wellness,
		Energy:   feedback.Energy,
		Sleep:    feedback.Sleep,
	})

	if account, ok := f.store.accounts[ownerID]; ok {
		account.Wellness = db_models.WellnessSnapshot{
			Wellness: feedback.Wellness * 10,
			Energy:   feedback.Energy * 10,
			Sleep:    feedback.Sleep * 10,
		}
	}
	return session, record, nil
}

type fakeNotificationRepo struct {
	store     *fakeStore
	insertErr error
}

func (f *fakeNotificationRepo) Insert(ctx context.Context, notification *db_models.Notification) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	f.store.notifications = append(f.store.notifications, notification)
	return nil
}

func (f *fakeNotificationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.Notification, error) {
	return f.store.notificationsFor(ownerID), nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id, ownerID uuid.UUID) (*db_models.Notification, error) {
	for _, n := range f.store.notifications {
		if n.ID == id && n.AccountID == ownerID {
			n.Read = true
			return n, nil
		}
	}
	return nil, utils.ErrNotFound
}

type fakeOnboarding struct {
	calls int
	err   error
}

func (f *fakeOnboarding) SeedAccount(ctx context.Context, account *db_models.Account) error {
	f.calls++
	return f.err
}
