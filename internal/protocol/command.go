package protocol

import (
	"errors"
	"fmt"
	"strings"
)

// Op identifies a line-protocol command.
type Op string

const (
	OpSet  Op = "SET"
	OpGet  Op = "GET"
	OpExit Op = "EXIT"
)

// ErrMalformedCommand wraps every parse failure. Callers reply ERR and
// keep reading; a bad line never terminates the session.
var ErrMalformedCommand = errors.New("malformed command")

// Command represents one decoded line-protocol command.
//
// A Command consists of an operation, an optional key, and an optional
// value. SET carries both a key and a value, GET only a key, EXIT neither.
type Command struct {
	Op  Op
	Key string // Key argument (may be empty)
	Val string // Value argument (may be empty)
}

// ParseCommand decodes a single input line, already stripped of
// surrounding whitespace.
//
// The command word is case-insensitive. For SET, the key is the first
// space-delimited token after the command and the value is the remainder
// of the line verbatim, so values may contain spaces.
func ParseCommand(line string) (*Command, error) {
	parts := strings.SplitN(line, " ", 3)

	switch Op(strings.ToUpper(parts[0])) {
	case OpSet:
		if len(parts) < 3 {
			return nil, fmt.Errorf("%w: SET requires a key and a value", ErrMalformedCommand)
		}
		if parts[1] == "" {
			return nil, fmt.Errorf("%w: SET key must not be empty", ErrMalformedCommand)
		}
		return &Command{Op: OpSet, Key: parts[1], Val: parts[2]}, nil

	case OpGet:
		if len(parts) != 2 || parts[1] == "" {
			return nil, fmt.Errorf("%w: GET requires exactly one key", ErrMalformedCommand)
		}
		return &Command{Op: OpGet, Key: parts[1]}, nil

	case OpExit:
		if len(parts) != 1 {
			return nil, fmt.Errorf("%w: EXIT takes no arguments", ErrMalformedCommand)
		}
		return &Command{Op: OpExit}, nil

	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrMalformedCommand, parts[0])
	}
}
