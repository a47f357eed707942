package main

import "sync/atomic"

// Metrics holds the atomic counters surfaced by the INFO command.
type Metrics struct {
	TotalConnections atomic.Uint64 // connections ever accepted
	TotalCommands    atomic.Uint64 // commands ever dispatched
	UnknownCommands  atomic.Uint64 // dispatches that matched no handler
}

// NewMetrics creates and returns a new Metrics struct.
func NewMetrics() *Metrics {
	return &Metrics{}
}
