// parser.go reads client commands off the wire.
//
// The server speaks the request subset of RESP (REdis Serialization
// Protocol). Speaking RESP means redis-cli, redis-benchmark and every Redis
// client library work against this server out of the box, and the
// length-prefixed framing needs no escaping rules.
//
// Two request formats are accepted:
//
//   - RESP arrays, the standard programmatic form:
//     "*3\r\n$10\r\nL.PUSHBACK\r\n$4\r\njobs\r\n$2\r\n17\r\n"
//   - Inline commands, space separated, for telnet/netcat debugging:
//     "L.PUSHBACK jobs 17\r\n"
//
// The parser is hardened against hostile clients: bulk lengths, array counts
// and line sizes are all capped before any allocation happens, so a client
// cannot force a huge allocation or buffer bytes forever by never sending a
// newline.

package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

// Protocol limits. The bulk cap matches Redis's proto-max-bulk-len default.
const (
	MaxBulkLength = 512 * 1024 * 1024
	MaxArrayLen   = 1 << 20
	MaxLineSize   = 64 * 1024
)

var (
	ErrInvalidSyntax = errors.New("ERR protocol error: invalid syntax")
	ErrLineTooLong   = errors.New("ERR protocol error: line too long")
	ErrBulkTooLarge  = errors.New("ERR protocol error: bulk string exceeds 512MB limit")
	ErrArrayTooLong  = errors.New("ERR protocol error: array exceeds 1M elements limit")
)

type Parser struct {
	reader *bufio.Reader
}

func NewParser(conn io.Reader) *Parser {
	return &Parser{reader: bufio.NewReaderSize(conn, 4096)}
}

// Parse reads one command, in either format, and returns its parts.
func (p *Parser) Parse() ([]string, error) {
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if len(line) == 0 {
		return nil, ErrInvalidSyntax
	}

	// '*' opens a RESP array; anything else is treated as inline.
	if line[0] == '*' {
		return p.parseRESPArray(line)
	}
	return p.parseInline(line)
}

// Buffered reports how many bytes the reader still holds. The connection
// loop uses this to detect pipelining and delay flushes.
func (p *Parser) Buffered() int {
	return p.reader.Buffered()
}

// readLine reads up to '\n', enforcing MaxLineSize so a client that never
// terminates a line cannot grow the buffer without bound.
func (p *Parser) readLine() ([]byte, error) {
	line, isPrefix, err := p.reader.ReadLine()
	if err != nil {
		return nil, err
	}
	if !isPrefix {
		return line, nil
	}

	var buf bytes.Buffer
	buf.Write(line)
	for isPrefix {
		line, isPrefix, err = p.reader.ReadLine()
		if err != nil {
			return nil, err
		}
		// Check before writing so the limit also bounds the allocation.
		if buf.Len()+len(line) > MaxLineSize {
			return nil, ErrLineTooLong
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}

// parseInline splits a space-separated command line.
func (p *Parser) parseInline(line []byte) ([]string, error) {
	parts := bytes.Fields(line)
	if len(parts) == 0 {
		return nil, ErrInvalidSyntax
	}
	result := make([]string, len(parts))
	for i, part := range parts {
		result[i] = string(part)
	}
	return result, nil
}

// parseRESPArray parses "*<count>\r\n" followed by count bulk strings.
func (p *Parser) parseRESPArray(header []byte) ([]string, error) {
	count, err := strconv.Atoi(string(bytes.TrimSpace(header[1:])))
	if err != nil {
		return nil, ErrInvalidSyntax
	}

	// Null (*-1) and empty (*0) arrays are valid and empty.
	if count <= 0 {
		return []string{}, nil
	}
	if count > MaxArrayLen {
		return nil, ErrArrayTooLong
	}

	command := make([]string, 0, count)
	for i := 0; i < count; i++ {
		str, err := p.parseBulkString()
		if err != nil {
			return nil, err
		}
		command = append(command, str)
	}
	return command, nil
}

// parseBulkString parses "$<len>\r\n<data>\r\n".
func (p *Parser) parseBulkString() (string, error) {
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if len(line) == 0 || line[0] != '$' {
		return "", ErrInvalidSyntax
	}

	length, err := strconv.Atoi(string(bytes.TrimSpace(line[1:])))
	if err != nil {
		return "", ErrInvalidSyntax
	}

	// Null bulk string ($-1): our commands don't distinguish null from
	// empty, so collapse it.
	if length == -1 {
		return "", nil
	}
	if length < 0 {
		return "", ErrInvalidSyntax
	}
	if length > MaxBulkLength {
		return "", ErrBulkTooLarge
	}

	// Data plus trailing CRLF in one read.
	buf := make([]byte, length+2)
	if _, err := io.ReadFull(p.reader, buf); err != nil {
		return "", err
	}
	if buf[length] != '\r' || buf[length+1] != '\n' {
		return "", ErrInvalidSyntax
	}
	return string(buf[:length]), nil
}
