package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity/internal/models/db_models"
	"serenity/pkg/utils"
)

func newDashboardFixture() (*fakeStore, DashboardServiceInterface) {
	store := newFakeStore()
	return store, NewDashboardService(
		&fakeAccountRepo{store: store},
		&fakeProgressRepo{store: store},
		&fakeSessionRepo{store: store},
		&fakeNotificationRepo{store: store},
	)
}

func TestBuildDashboardForPatient(t *testing.T) {
	store, service := newDashboardFixture()
	account := seedAccount(store, db_models.AccountTypePatient)
	account.Wellness = db_models.WellnessSnapshot{Wellness: 80, Energy: 70, Sleep: 90}

	store.progress[account.ID] = &db_models.ProgressRecord{
		AccountID:       account.ID,
		OverallProgress: 25,
		TotalSessions:   db_models.DefaultTotalSessions,
	}
	addScheduledSession(store, account.ID)
	store.notifications = append(store.notifications, &db_models.Notification{
		AccountID: account.ID,
		Title:     "Welcome to Serenity",
	})

	dashboard, err := service.BuildDashboard(context.Background(), account.ID)
	require.NoError(t, err)

	require.NotNil(t, dashboard.Progress)
	assert.Equal(t, 25.0, dashboard.Progress.OverallProgress)
	assert.Len(t, dashboard.UpcomingSessions, 1)
	assert.Len(t, dashboard.Notifications, 1)
	assert.Equal(t, 80, dashboard.WellnessMetrics.Wellness)
}

func TestBuildDashboardForPractitionerHasNoProgress(t *testing.T) {
	store, service := newDashboardFixture()
	account := seedAccount(store, db_models.AccountTypePractitioner)

	dashboard, err := service.BuildDashboard(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Nil(t, dashboard.Progress)
}

func TestBuildDashboardOmitsTerminalSessions(t *testing.T) {
	store, service := newDashboardFixture()
	account := seedAccount(store, db_models.AccountTypePatient)

	addScheduledSession(store, account.ID)
	closed := addScheduledSession(store, account.ID)
	closed.Status = db_models.SessionStatusCompleted

	dashboard, err := service.BuildDashboard(context.Background(), account.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.UpcomingSessions, 1)
	assert.Equal(t, db_models.SessionStatusScheduled, dashboard.UpcomingSessions[0].Status)
}

func TestBuildDashboardUnknownAccount(t *testing.T) {
	_, service := newDashboardFixture()

	_, err := service.BuildDashboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
}

func TestBuildDashboardInactiveAccount(t *testing.T) {
	store, service := newDashboardFixture()
	account := seedAccount(store, db_models.AccountTypePatient)
	account.Active = false

	_, err := service.BuildDashboard(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
}
