package main

import (
	"fmt"
	"io"
)

// unknownCommandResponse sends an unknown command error to the client.
func (app *application) unknownCommandResponse(w io.Writer, name string) {
	_ = app.writeErrorResponse(w, fmt.Sprintf("ERR unknown command '%s'", name))
}

// wrongNumberOfArgsResponse sends a wrong number of arguments error.
func (app *application) wrongNumberOfArgsResponse(w io.Writer, name string) {
	_ = app.writeErrorResponse(w, fmt.Sprintf("ERR wrong number of arguments for '%s' command", name))
}

// notAnIntegerResponse rejects an argument that failed int64 parsing.
func (app *application) notAnIntegerResponse(w io.Writer) {
	_ = app.writeErrorResponse(w, "ERR value is not an integer or out of range")
}
