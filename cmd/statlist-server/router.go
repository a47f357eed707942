package main

import (
	"io"
	"strings"
)

// CommandHandler is the signature shared by all command handlers. Handlers
// write their RESP response to w, typically a buffered writer wrapping the
// connection.
type CommandHandler func(w io.Writer, args []string)

// Router maps uppercase command names to handlers.
type Router struct {
	handlers map[string]CommandHandler
}

// NewRouter creates a new, empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]CommandHandler)}
}

// Handle registers a handler under name (case-insensitive).
func (r *Router) Handle(name string, handler CommandHandler) {
	r.handlers[strings.ToUpper(name)] = handler
}

// Dispatch routes one parsed command to its handler.
func (r *Router) Dispatch(app *application, w io.Writer, parts []string) {
	if len(parts) == 0 {
		return
	}

	app.metrics.TotalCommands.Add(1)

	name := strings.ToUpper(parts[0])
	handler, found := r.handlers[name]
	if !found {
		app.metrics.UnknownCommands.Add(1)
		app.unknownCommandResponse(w, name)
		return
	}

	handler(w, parts[1:])
}
