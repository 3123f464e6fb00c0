package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal. In tests replace them with stubs to avoid
// touching a real TTY.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	getState     = term.GetState
	restoreState = term.Restore
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// Surrounding whitespace is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a secret. When fd is a terminal
// the secret is read without echo and a newline is printed afterwards;
// otherwise one line is taken from reader, which keeps piped input working.
// Either way the secret is returned exactly as typed, without trimming.
//
// Cancelling ctx abandons the read and restores the terminal state.
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer, fd int) ([]byte, error) {
	if !isTerminal(fd) {
		if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
			return nil, err
		}
		line, err := readContext(ctx, func() (string, error) { return readLine(reader) })
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}

	state, stateErr := getState(fd)
	pw, err := readContext(ctx, func() ([]byte, error) { return readPassword(fd) })
	fmt.Fprintln(w)
	if err != nil {
		if ctx.Err() != nil && stateErr == nil {
			_ = restoreState(fd, state)
		}
		return nil, err
	}
	return pw, nil
}

// readLine reads one line from reader without printing anything and strips
// only the line terminator. It reports io.EOF only when no input is left.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readContext runs the blocking read in its own goroutine and returns early
// with ctx.Err() once ctx is done. An abandoned read keeps its goroutine until
// input arrives, so the reader must not be used after cancellation.
func readContext[T any](ctx context.Context, read func() (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	type result struct {
		v   T
		err error
	}

	done := make(chan result, 1)
	go func() {
		v, err := read()
		done <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-done:
		return r.v, r.err
	}
}
