package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity/internal/models/db_models"
	"serenity/internal/models/request_models"
	"serenity/internal/models/response_models"
	"serenity/pkg/utils"
)

// syncServer emulates the REST surface, counting hits per route so tests can
// assert exactly which aggregates a mutation re-pulled.
type syncServer struct {
	mu   sync.Mutex
	hits map[string]int

	server *httptest.Server
	token  string
}

func newSyncServer(t *testing.T) *syncServer {
	t.Helper()
	s := &syncServer{hits: make(map[string]int), token: mintToken(t, time.Hour)}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		s.count("login")
		s.respond(w, http.StatusOK, response_models.AuthResponse{
			Token:   s.token,
			Account: &response_models.AccountResponse{ID: "acc-1", Email: "a@x.com"},
		})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		s.count("me")
		if r.Header.Get("Authorization") != "Bearer "+s.currentToken() {
			s.respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		s.respond(w, http.StatusOK, response_models.AccountResponse{ID: "acc-1", Email: "a@x.com"})
	})
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		s.count("logout")
		s.respond(w, http.StatusOK, nil)
	})
	mux.HandleFunc("GET /dashboard", func(w http.ResponseWriter, r *http.Request) {
		s.count("dashboard")
		s.respond(w, http.StatusOK, response_models.DashboardResponse{
			WellnessMetrics: db_models.WellnessSnapshot{Wellness: 80},
		})
	})
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		s.count("sessions")
		s.respond(w, http.StatusOK, []db_models.TherapySession{{Name: "Therapy Session"}})
	})
	mux.HandleFunc("GET /notifications", func(w http.ResponseWriter, r *http.Request) {
		s.count("notifications")
		s.respond(w, http.StatusOK, []db_models.Notification{{Title: "Welcome to Serenity"}})
	})
	mux.HandleFunc("PUT /notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		s.count("mark-read")
		if r.Header.Get("Authorization") != "Bearer "+s.currentToken() {
			s.respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		s.respond(w, http.StatusOK, nil)
	})

	s.server = httptest.NewServer(mux)
	t.Cleanup(s.server.Close)
	return s
}

func (s *syncServer) count(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits[route]++
}

func (s *syncServer) hitCount(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

func (s *syncServer) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *syncServer) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "success",
		"code":   status,
		"data":   data,
	})
}

func (s *syncServer) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "error",
		"code":    status,
		"message": message,
	})
}

func newSyncFixture(t *testing.T) (*syncServer, *memStorage, *SyncCoordinator) {
	t.Helper()
	server := newSyncServer(t)
	storage := newMemStorage()
	cache := NewSessionCache(storage)
	coordinator := NewSyncCoordinator(NewAPIClient(server.server.URL), cache)
	return server, storage, coordinator
}

func TestBootstrapWithoutToken(t *testing.T) {
	server, _, coordinator := newSyncFixture(t)

	require.NoError(t, coordinator.Bootstrap(context.Background()))

	assert.False(t, coordinator.Authenticated())
	assert.Zero(t, server.hitCount("me"), "no token means no network call")
}

func TestBootstrapWithExpiredToken(t *testing.T) {
	server, storage, coordinator := newSyncFixture(t)
	cache := NewSessionCache(storage)
	require.NoError(t, cache.Store(mintToken(t, -time.Minute), &response_models.AccountResponse{}))

	require.NoError(t, coordinator.Bootstrap(context.Background()))

	assert.False(t, coordinator.Authenticated())
	assert.Nil(t, storage.values[StorageKeyToken], "stale credentials are purged")
	assert.Zero(t, server.hitCount("me"), "expiry is decided locally")
}

func TestBootstrapWithValidToken(t *testing.T) {
	server, storage, coordinator := newSyncFixture(t)
	cache := NewSessionCache(storage)
	require.NoError(t, cache.Store(server.token, &response_models.AccountResponse{}))

	require.NoError(t, coordinator.Bootstrap(context.Background()))

	assert.True(t, coordinator.Authenticated())
	require.NotNil(t, coordinator.Account())
	assert.Equal(t, "a@x.com", coordinator.Account().Email)
	assert.Equal(t, 1, server.hitCount("me"))
}

func TestBootstrapWithRejectedToken(t *testing.T) {
	server, storage, coordinator := newSyncFixture(t)
	cache := NewSessionCache(storage)
	// Fresh expiry but not the token the server issued.
	require.NoError(t, cache.Store(mintToken(t, time.Hour), &response_models.AccountResponse{}))

	require.NoError(t, coordinator.Bootstrap(context.Background()))

	assert.False(t, coordinator.Authenticated())
	assert.Nil(t, storage.values[StorageKeyToken])
	assert.Equal(t, 1, server.hitCount("me"))
}

func TestLoginAdoptsSessionAndRefreshesEverything(t *testing.T) {
	server, storage, coordinator := newSyncFixture(t)

	require.NoError(t, coordinator.Login(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "secret1",
	}))

	assert.True(t, coordinator.Authenticated())
	assert.Equal(t, server.token, string(storage.values[StorageKeyToken]))

	assert.Equal(t, 1, server.hitCount("dashboard"))
	assert.Equal(t, 1, server.hitCount("sessions"))
	assert.Equal(t, 1, server.hitCount("notifications"))

	require.NotNil(t, coordinator.Dashboard())
	assert.Equal(t, 80, coordinator.Dashboard().WellnessMetrics.Wellness)
	assert.Len(t, coordinator.Sessions(), 1)
	assert.Len(t, coordinator.Notifications(), 1)
}

func TestMarkNotificationReadRefreshesOnlyNotifications(t *testing.T) {
	server, _, coordinator := newSyncFixture(t)
	require.NoError(t, coordinator.Login(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "secret1",
	}))

	require.NoError(t, coordinator.MarkNotificationRead(context.Background(), "n-1"))

	assert.Equal(t, 2, server.hitCount("notifications"))
	assert.Equal(t, 1, server.hitCount("dashboard"), "untouched aggregates stay cached")
	assert.Equal(t, 1, server.hitCount("sessions"))
}

func TestLogoutDropsLocalState(t *testing.T) {
	server, storage, coordinator := newSyncFixture(t)
	require.NoError(t, coordinator.Login(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "secret1",
	}))

	coordinator.Logout(context.Background())

	assert.Equal(t, 1, server.hitCount("logout"))
	assert.False(t, coordinator.Authenticated())
	assert.Nil(t, coordinator.Account())
	assert.Nil(t, coordinator.Dashboard())
	assert.Nil(t, storage.values[StorageKeyToken])
}

func TestStaleRefreshResultIsDiscarded(t *testing.T) {
	writeSessions := func(w http.ResponseWriter, name string) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"code":   http.StatusOK,
			"data":   []db_models.TherapySession{{Name: name}},
		})
	}

	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			// Park the first fetch until the newer one has landed; by then
			// its context has been cancelled.
			<-release
			writeSessions(w, "stale")
			return
		}
		writeSessions(w, "fresh")
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	coordinator := NewSyncCoordinator(NewAPIClient(server.URL), NewSessionCache(newMemStorage()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		// Loses the race below; its result must not land.
		coordinator.refreshAggregate(context.Background(), AggregateSessions)
	}()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, coordinator.refreshAggregate(context.Background(), AggregateSessions))
	close(release)
	wg.Wait()

	require.Len(t, coordinator.Sessions(), 1)
	assert.Equal(t, "fresh", coordinator.Sessions()[0].Name)
}

func TestAuthErrorForcesUnauthenticated(t *testing.T) {
	server, storage, coordinator := newSyncFixture(t)
	require.NoError(t, coordinator.Login(context.Background(), request_models.LoginRequest{
		Email: "a@x.com", Password: "secret1",
	}))

	// Server stops accepting the token; the next mutation must drop the
	// session instead of retrying.
	server.mu.Lock()
	server.token = "rotated-away"
	server.mu.Unlock()

	err := coordinator.MarkNotificationRead(context.Background(), "n-1")
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
	assert.False(t, coordinator.Authenticated())
	assert.Nil(t, storage.values[StorageKeyToken])
}
