// Package session runs the store's line protocol: one command per input
// line, one reply line per command.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wravell/logcask/core"
	"github.com/wravell/logcask/internal/protocol"
)

const maxLineBytes = 1024 * 1024

// Run reads commands from r and writes one reply per command to w until
// EXIT or end of input. Commands are processed strictly one at a time; a
// SET is acknowledged with OK only after the store reports the write
// durable. Malformed lines and per-command storage failures produce an
// ERR reply and the loop continues with the next line.
func Run(r io.Reader, w io.Writer, store *core.Store) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := protocol.ParseCommand(line)
		if err != nil {
			fmt.Fprintln(w, protocol.ReplyErr)
			continue
		}

		switch cmd.Op {
		case protocol.OpSet:
			if err := store.Set(cmd.Key, cmd.Val); err != nil {
				fmt.Fprintln(os.Stderr, "logcask: write failed:", err)
				fmt.Fprintln(w, protocol.ReplyErr)
				continue
			}
			fmt.Fprintln(w, protocol.ReplyOK)

		case protocol.OpGet:
			value, ok, err := store.Get(cmd.Key)
			if err != nil {
				fmt.Fprintln(os.Stderr, "logcask: read failed:", err)
				fmt.Fprintln(w, protocol.ReplyErr)
				continue
			}
			fmt.Fprintln(w, protocol.FormatLookup(value, ok))

		case protocol.OpExit:
			fmt.Fprintln(w, protocol.ReplyOK)
			return nil
		}
	}

	return scanner.Err()
}
