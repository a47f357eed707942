// handlers.go implements the administrative commands that operate on the
// registry rather than on one list's contents.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// handlePing handles PING. Replies PONG, or echoes a single argument.
func (app *application) handlePing(w io.Writer, args []string) {
	if len(args) > 1 {
		app.wrongNumberOfArgsResponse(w, "PING")
		return
	}
	if len(args) == 1 {
		_ = app.writeBulkStringResponse(w, args[0])
		return
	}
	_ = app.writeSimpleStringResponse(w, "PONG")
}

// handleDel handles DEL key: drops the named list entirely. Unlike L.CLEAR,
// the name is forgotten too.
func (app *application) handleDel(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "DEL")
		return
	}
	_ = app.writeIntegerResponse(w, boolToInt(app.store.Delete(args[0])))
}

// handleExists handles EXISTS key.
func (app *application) handleExists(w io.Writer, args []string) {
	if len(args) != 1 {
		app.wrongNumberOfArgsResponse(w, "EXISTS")
		return
	}
	_ = app.writeIntegerResponse(w, boolToInt(app.store.Exists(args[0])))
}

// handleInfo handles INFO: a human-readable status block as a bulk string,
// in the sectioned key:value format redis-cli knows how to display.
func (app *application) handleInfo(w io.Writer, args []string) {
	if len(args) != 0 {
		app.wrongNumberOfArgsResponse(w, "INFO")
		return
	}

	uptime := time.Since(app.startedAt).Truncate(time.Second)

	var b strings.Builder
	b.WriteString("# Server\r\n")
	fmt.Fprintf(&b, "uptime_seconds:%d\r\n", int64(uptime.Seconds()))
	fmt.Fprintf(&b, "uptime_human:%s\r\n", uptime)
	b.WriteString("# Stats\r\n")
	fmt.Fprintf(&b, "total_connections:%s\r\n", humanize.Comma(int64(app.metrics.TotalConnections.Load())))
	fmt.Fprintf(&b, "total_commands:%s\r\n", humanize.Comma(int64(app.metrics.TotalCommands.Load())))
	fmt.Fprintf(&b, "unknown_commands:%s\r\n", humanize.Comma(int64(app.metrics.UnknownCommands.Load())))
	b.WriteString("# Keyspace\r\n")
	fmt.Fprintf(&b, "lists:%d\r\n", app.store.Count())

	_ = app.writeBulkStringResponse(w, b.String())
}
