// responses.go writes RESP replies. Everything is built with append and
// strconv rather than fmt, and the handful of constant replies (+OK, :0, :1,
// nil) are pre-allocated — list commands answer with 0/1 and small integers
// constantly, and those paths should not allocate.

package main

import (
	"io"
	"strconv"
)

var (
	respOK   = []byte("+OK\r\n")
	respPong = []byte("+PONG\r\n")
	respZero = []byte(":0\r\n")
	respOne  = []byte(":1\r\n")
	respNil  = []byte("$-1\r\n")
)

func (app *application) writeSimpleStringResponse(w io.Writer, s string) error {
	if s == "OK" {
		_, err := w.Write(respOK)
		return err
	}
	if s == "PONG" {
		_, err := w.Write(respPong)
		return err
	}

	buf := make([]byte, 0, 1+len(s)+2)
	buf = append(buf, '+')
	buf = append(buf, s...)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func (app *application) writeErrorResponse(w io.Writer, errStr string) error {
	buf := make([]byte, 0, 1+len(errStr)+2)
	buf = append(buf, '-')
	buf = append(buf, errStr...)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func (app *application) writeIntegerResponse(w io.Writer, i int64) error {
	// 0 and 1 cover every boolean-style reply (CONTAINS, DELETE, EXISTS...).
	if i == 0 {
		_, err := w.Write(respZero)
		return err
	}
	if i == 1 {
		_, err := w.Write(respOne)
		return err
	}

	buf := make([]byte, 0, 24)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, i, 10)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

func (app *application) writeNilResponse(w io.Writer) error {
	_, err := w.Write(respNil)
	return err
}

func (app *application) writeBulkStringResponse(w io.Writer, s string) error {
	buf := make([]byte, 0, 16+len(s))
	buf = append(buf, '$')
	buf = strconv.AppendInt(buf, int64(len(s)), 10)
	buf = append(buf, '\r', '\n')
	buf = append(buf, s...)
	buf = append(buf, '\r', '\n')
	_, err := w.Write(buf)
	return err
}

// writeFloatResponse writes a float as a bulk string in shortest-roundtrip
// form ("2.5", "3"). RESP2 has no native double type; bulk strings are how
// Redis itself returns float scores.
func (app *application) writeFloatResponse(w io.Writer, f float64) error {
	return app.writeBulkStringResponse(w, strconv.FormatFloat(f, 'g', -1, 64))
}

// writeIntegerArrayResponse writes "*n\r\n" followed by n integer replies in
// a single Write call.
func (app *application) writeIntegerArrayResponse(w io.Writer, values []int64) error {
	buf := make([]byte, 0, 16+len(values)*8)
	buf = append(buf, '*')
	buf = strconv.AppendInt(buf, int64(len(values)), 10)
	buf = append(buf, '\r', '\n')
	for _, v := range values {
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, v, 10)
		buf = append(buf, '\r', '\n')
	}
	_, err := w.Write(buf)
	return err
}
