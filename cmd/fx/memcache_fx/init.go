package memcache_fx

import (
	"time"

	"go.uber.org/fx"
	mem "serenity/pkg/memcache"
)

// Auth endpoints allow 5 attempts per origin in a 15 minute window.
const (
	authWindow      = 15 * time.Minute
	authMaxAttempts = 5
)

var Module = fx.Provide(
	provideAttemptStore)

func provideAttemptStore() mem.AttemptStore {
	return mem.NewAttemptStore(authWindow, authMaxAttempts)
}
