package main

import (
	"bufio"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"
)

// startTestServer boots a real listener on an ephemeral port and returns its
// address. The listener is closed during cleanup.
func startTestServer(t *testing.T, maxConnections int) (*application, string) {
	t.Helper()

	app := &application{
		config: config{
			port:            0,
			maxConnections:  maxConnections,
			idleTimeout:     time.Minute,
			shutdownTimeout: time.Second,
		},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		store:       NewStore(),
		router:      NewRouter(),
		metrics:     NewMetrics(),
		startedAt:   time.Now(),
		connLimiter: make(chan struct{}, maxConnections),
		readyCh:     make(chan struct{}),
	}
	app.routes()

	go func() { _ = app.serve() }()
	<-app.readyCh
	t.Cleanup(func() { _ = app.listener.Close() })

	return app, app.listener.Addr().String()
}

func TestServerEndToEnd(t *testing.T) {
	_, addr := startTestServer(t, 8)

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()
	reader := bufio.NewReader(conn)

	roundTrip := func(command, want string) {
		t.Helper()
		if _, err := conn.Write([]byte(command + "\r\n")); err != nil {
			t.Fatalf("write %q: %v", command, err)
		}
		got := make([]byte, len(want))
		if _, err := io.ReadFull(reader, got); err != nil {
			t.Fatalf("read reply to %q: %v", command, err)
		}
		if string(got) != want {
			t.Errorf("%s: got %q, want %q", command, got, want)
		}
	}

	roundTrip("PING", "+PONG\r\n")
	roundTrip("L.PUSHBACK jobs 3 1 2", ":3\r\n")
	roundTrip("L.SORT jobs ASC", "+OK\r\n")
	roundTrip("L.RANGE jobs", "*3\r\n:1\r\n:2\r\n:3\r\n")
	roundTrip("L.MEDIAN jobs", "$1\r\n2\r\n")
}

func TestServerRESPArrayRequests(t *testing.T) {
	_, addr := startTestServer(t, 8)

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()
	reader := bufio.NewReader(conn)

	// The same request redis-cli would send.
	request := "*3\r\n$10\r\nL.PUSHBACK\r\n$4\r\njobs\r\n$2\r\n17\r\n"
	if _, err := conn.Write([]byte(request)); err != nil {
		t.Fatalf("write: %v", err)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if line != ":1\r\n" {
		t.Errorf("got %q, want %q", line, ":1\r\n")
	}
}

func TestServerPipelinedCommands(t *testing.T) {
	_, addr := startTestServer(t, 8)

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = conn.Close() }()
	reader := bufio.NewReader(conn)

	if _, err := conn.Write([]byte("L.PUSHBACK jobs 1\r\nL.PUSHBACK jobs 2\r\nL.SIZE jobs\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, want := range []string{":1\r\n", ":2\r\n", ":2\r\n"} {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if line != want {
			t.Errorf("got %q, want %q", line, want)
		}
	}
}

func TestServerRejectsOverLimit(t *testing.T) {
	app, addr := startTestServer(t, 1)

	first, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = first.Close() }()

	// Confirm the first connection is fully established before the second
	// dial, otherwise the semaphore may not be held yet.
	firstReader := bufio.NewReader(first)
	if _, err := first.Write([]byte("PING\r\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := firstReader.ReadString('\n'); err != nil {
		t.Fatalf("read: %v", err)
	}

	second, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("dial second: %v", err)
	}
	defer func() { _ = second.Close() }()

	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := bufio.NewReader(second).ReadString('\n')
	if err != nil {
		t.Fatalf("read rejection: %v", err)
	}
	if line != errMaxConnectionsResponse {
		t.Errorf("got %q, want %q", line, errMaxConnectionsResponse)
	}

	if app.metrics.TotalConnections.Load() != 1 {
		t.Errorf("TotalConnections = %d, want 1", app.metrics.TotalConnections.Load())
	}
}
