package client

import (
	"context"
	"errors"
	"log"
	"sync"

	"serenity/internal/models/db_models"
	"serenity/internal/models/request_models"
	"serenity/internal/models/response_models"
	"serenity/pkg/utils"
)

// Aggregate names a server-side bundle the client caches.
type Aggregate string

const (
	AggregateDashboard     Aggregate = "dashboard"
	AggregateSessions      Aggregate = "sessions"
	AggregateNotifications Aggregate = "notifications"
)

// SyncCoordinator reconciles the local session cache with server truth.
// Each mutation declares exactly which aggregates it stales; only those are
// re-pulled. A newer refresh for an aggregate cancels the older in-flight
// one, and responses that lost the race are discarded.
type SyncCoordinator struct {
	api   *APIClient
	cache *SessionCache

	mu            sync.Mutex
	authenticated bool
	account       *response_models.AccountResponse
	dashboard     *response_models.DashboardResponse
	sessions      []db_models.TherapySession
	notifications []db_models.Notification
	generation    map[Aggregate]uint64
	cancels       map[Aggregate]context.CancelFunc
}

func NewSyncCoordinator(api *APIClient, cache *SessionCache) *SyncCoordinator {
	return &SyncCoordinator{
		api:        api,
		cache:      cache,
		generation: make(map[Aggregate]uint64),
		cancels:    make(map[Aggregate]context.CancelFunc),
	}
}

// Bootstrap restores the session on application start. Any failure, token
// or network, lands in a clean unauthenticated state; it never surfaces an
// ambiguous half-authenticated one.
func (s *SyncCoordinator) Bootstrap(ctx context.Context) error {
	if !s.cache.IsValid() {
		// IsValid already cleared the cache on a bad token.
		s.resetAuth()
		return nil
	}

	token, err := s.cache.Token()
	if err != nil {
		s.forceUnauthenticated()
		return nil
	}
	s.api.SetToken(token)

	account, err := s.api.Me(ctx)
	if err != nil {
		log.Printf("Session restore failed: %v", err)
		s.forceUnauthenticated()
		return nil
	}

	if err := s.cache.Store(token, account); err != nil {
		log.Printf("Session cache refresh failed: %v", err)
	}

	s.mu.Lock()
	s.authenticated = true
	s.account = account
	s.mu.Unlock()
	return nil
}

func (s *SyncCoordinator) SignUp(ctx context.Context, req request_models.SignUpRequest) error {
	result, err := s.api.SignUp(ctx, req)
	if err != nil {
		return err
	}
	return s.adoptSession(ctx, result)
}

func (s *SyncCoordinator) Login(ctx context.Context, req request_models.LoginRequest) error {
	result, err := s.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return s.adoptSession(ctx, result)
}

func (s *SyncCoordinator) adoptSession(ctx context.Context, auth *response_models.AuthResponse) error {
	s.api.SetToken(auth.Token)
	if err := s.cache.Store(auth.Token, auth.Account); err != nil {
		return err
	}

	s.mu.Lock()
	s.authenticated = true
	s.account = auth.Account
	s.mu.Unlock()

	s.refresh(ctx, AggregateDashboard, AggregateSessions, AggregateNotifications)
	return nil
}

// Logout clears local state regardless of whether the server call succeeds;
// tokens are not revocable server-side anyway.
func (s *SyncCoordinator) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		log.Printf("Logout call failed: %v", err)
	}
	s.forceUnauthenticated()
}

func (s *SyncCoordinator) CreateSession(ctx context.Context, req request_models.CreateSessionRequest) (*db_models.TherapySession, error) {
	session, err := s.api.CreateSession(ctx, req)
	if err != nil {
		return nil, s.interceptAuthError(err)
	}
	s.refresh(ctx, AggregateSessions, AggregateNotifications, AggregateDashboard)
	return session, nil
}

func (s *SyncCoordinator) SubmitFeedback(ctx context.Context, sessionID string, req request_models.FeedbackRequest) (*response_models.FeedbackResponse, error) {
	result, err := s.api.SubmitFeedback(ctx, sessionID, req)
	if err != nil {
		return nil, s.interceptAuthError(err)
	}
	s.refresh(ctx, AggregateSessions, AggregateNotifications, AggregateDashboard)
	return result, nil
}

func (s *SyncCoordinator) MarkNotificationRead(ctx context.Context, notificationID string) error {
	if err := s.api.MarkNotificationRead(ctx, notificationID); err != nil {
		return s.interceptAuthError(err)
	}
	s.refresh(ctx, AggregateNotifications)
	return nil
}

// refresh re-pulls the named aggregates. Each aggregate gets a fresh
// generation; whoever finishes with a stale generation throws its result
// away instead of overwriting newer state.
func (s *SyncCoordinator) refresh(ctx context.Context, aggregates ...Aggregate) {
	for _, aggregate := range aggregates {
		if err := s.refreshAggregate(ctx, aggregate); err != nil {
			log.Printf("Refresh of %s failed: %v", aggregate, err)
		}
	}
}

func (s *SyncCoordinator) refreshAggregate(ctx context.Context, aggregate Aggregate) error {
	s.mu.Lock()
	s.generation[aggregate]++
	generation := s.generation[aggregate]
	if cancel := s.cancels[aggregate]; cancel != nil {
		cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	s.cancels[aggregate] = cancel
	s.mu.Unlock()

	var apply func()
	var err error
	switch aggregate {
	case AggregateDashboard:
		var dashboard *response_models.DashboardResponse
		dashboard, err = s.api.Dashboard(fetchCtx)
		apply = func() { s.dashboard = dashboard }
	case AggregateSessions:
		var sessions []db_models.TherapySession
		sessions, err = s.api.Sessions(fetchCtx)
		apply = func() { s.sessions = sessions }
	case AggregateNotifications:
		var notifications []db_models.Notification
		notifications, err = s.api.Notifications(fetchCtx)
		apply = func() { s.notifications = notifications }
	default:
		return nil
	}
	if err != nil {
		return s.interceptAuthError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation[aggregate] != generation {
		// A newer refresh won the race; this result is stale.
		return nil
	}
	apply()
	return nil
}

// interceptAuthError drops the local session when the server stops accepting
// our token. Authentication failures are never retried automatically.
func (s *SyncCoordinator) interceptAuthError(err error) error {
	if errors.Is(err, utils.ErrUnauthorized) || errors.Is(err, utils.ErrForbidden) {
		s.forceUnauthenticated()
	}
	return err
}

func (s *SyncCoordinator) forceUnauthenticated() {
	if err := s.cache.Clear(); err != nil {
		log.Printf("Session cache clear failed: %v", err)
	}
	s.resetAuth()
}

func (s *SyncCoordinator) resetAuth() {
	s.api.SetToken("")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.account = nil
	s.dashboard = nil
	s.sessions = nil
	s.notifications = nil
}

func (s *SyncCoordinator) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *SyncCoordinator) Account() *response_models.AccountResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

func (s *SyncCoordinator) Dashboard() *response_models.DashboardResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

func (s *SyncCoordinator) Sessions() []db_models.TherapySession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

func (s *SyncCoordinator) Notifications() []db_models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}
