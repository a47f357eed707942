package main

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

// newTestApp builds an application with a fresh store and a silenced logger.
// No listener is started; handler tests call handlers directly with a buffer.
func newTestApp(t *testing.T) *application {
	t.Helper()

	app := &application{
		config: config{
			port:            0,
			maxConnections:  4,
			shutdownTimeout: time.Second,
		},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:       NewStore(),
		router:      NewRouter(),
		metrics:     NewMetrics(),
		startedAt:   time.Now(),
		connLimiter: make(chan struct{}, 4),
	}
	app.routes()
	return app
}
