//go:build unix

package cursor

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// queryTimeout bounds how long QueryPosition waits for the terminal's reply.
const queryTimeout = 250 * time.Millisecond

// QueryPosition asks the controlling terminal for the cursor position with a
// DSR request. The tty is switched to raw mode for the duration of the query
// so the reply is neither echoed nor line-buffered.
func QueryPosition() (int, int, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoPosition, err)
	}
	defer tty.Close()

	// Fd() would switch the file to blocking mode and disable deadlines.
	rc, err := tty.SyscallConn()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoPosition, err)
	}
	fd := -1
	if err := rc.Control(func(f uintptr) { fd = int(f) }); err != nil || fd < 0 {
		return 0, 0, fmt.Errorf("%w: no tty descriptor", ErrNoPosition)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoPosition, err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	if _, err := tty.WriteString(csiQueryPos); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoPosition, err)
	}
	if err := tty.SetReadDeadline(time.Now().Add(queryTimeout)); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrNoPosition, err)
	}

	reply := make([]byte, 0, 32)
	buf := make([]byte, 32)
	for !bytes.ContainsRune(reply, 'R') {
		n, err := tty.Read(buf)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrNoPosition, err)
		}
		reply = append(reply, buf[:n]...)
		if len(reply) > 256 {
			break
		}
	}
	return parseReport(reply)
}
