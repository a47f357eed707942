// statlist-server exposes named statlist containers over RESP.
//
// Each key names an independent list; the L.* commands map one to one onto
// the container's operations (pushes, pops, running min/max/median/mode,
// frequency, sampling, sorts, permutation stepping, merge and split). Because
// the protocol is RESP, redis-cli works directly:
//
//	$ redis-cli -p 6381 L.PUSHBACK jobs 3 1 2
//	(integer) 3
//	$ redis-cli -p 6381 L.MEDIAN jobs
//	"2"
//
// The server holds everything in memory and persists nothing. Containers are
// created on first mutating touch and live until DEL.

package main

import (
	"flag"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"
)

type config struct {
	port            int
	maxConnections  int
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
}

type application struct {
	config      config
	logger      *slog.Logger
	store       *Store
	router      *Router
	metrics     *Metrics
	startedAt   time.Time
	connLimiter chan struct{}
	wg          sync.WaitGroup
	listener    net.Listener

	// readyCh, when non-nil, is closed once the listener is bound. Tests use
	// it to connect without polling.
	readyCh chan struct{}
}

// routes registers every command.
func (app *application) routes() {
	r := app.router

	r.Handle("PING", app.handlePing)
	r.Handle("INFO", app.handleInfo)
	r.Handle("DEL", app.handleDel)
	r.Handle("EXISTS", app.handleExists)

	r.Handle("L.PUSHBACK", app.handleLPushBack)
	r.Handle("L.PUSHFRONT", app.handleLPushFront)
	r.Handle("L.POPBACK", app.handleLPopBack)
	r.Handle("L.POPFRONT", app.handleLPopFront)
	r.Handle("L.FRONT", app.handleLFront)
	r.Handle("L.BACK", app.handleLBack)
	r.Handle("L.SIZE", app.handleLSize)
	r.Handle("L.CONTAINS", app.handleLContains)
	r.Handle("L.FREQ", app.handleLFreq)
	r.Handle("L.MIN", app.handleLMin)
	r.Handle("L.MAX", app.handleLMax)
	r.Handle("L.MEDIAN", app.handleLMedian)
	r.Handle("L.MODE", app.handleLMode)
	r.Handle("L.DELETE", app.handleLDelete)
	r.Handle("L.UPDATE", app.handleLUpdate)
	r.Handle("L.KTH", app.handleLKth)
	r.Handle("L.RANGE", app.handleLRange)
	r.Handle("L.UNIQUE", app.handleLUnique)
	r.Handle("L.REVERSE", app.handleLReverse)
	r.Handle("L.ROTATE", app.handleLRotate)
	r.Handle("L.SAMPLE", app.handleLSample)
	r.Handle("L.DEDUP", app.handleLDedup)
	r.Handle("L.SORT", app.handleLSort)
	r.Handle("L.NEXTPERM", app.handleLNextPerm)
	r.Handle("L.PREVPERM", app.handleLPrevPerm)
	r.Handle("L.MERGE", app.handleLMerge)
	r.Handle("L.SPLIT", app.handleLSplit)
	r.Handle("L.CLEAR", app.handleLClear)
}

func main() {
	var cfg config
	flag.IntVar(&cfg.port, "port", 6381, "TCP port to listen on")
	flag.IntVar(&cfg.maxConnections, "max-connections", 1024, "Maximum concurrent client connections")
	flag.DurationVar(&cfg.idleTimeout, "idle-timeout", 5*time.Minute, "Close idle connections after this duration (0 disables)")
	flag.DurationVar(&cfg.shutdownTimeout, "shutdown-timeout", 10*time.Second, "Grace period for in-flight commands on shutdown")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &application{
		config:      cfg,
		logger:      logger,
		store:       NewStore(),
		router:      NewRouter(),
		metrics:     NewMetrics(),
		startedAt:   time.Now(),
		connLimiter: make(chan struct{}, cfg.maxConnections),
	}
	app.routes()

	if err := app.serve(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
