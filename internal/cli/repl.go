package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Generate(ctx context.Context, args []string) error
	Check(ctx context.Context, args []string) error
	Store(ctx context.Context, args []string) error
	Retrieve(ctx context.Context, args []string) error
	Reveal(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop writing to out.
//
// It reads a line from reader, parses the first word as a Command and
// dispatches it through the handlers table. The rest of the line is passed
// through untouched as a single argument, so site names keep their inner
// spacing. Handler errors are printed and the loop goes on. The loop exits
// on EOF, on "exit" or "quit", or as soon as ctx is cancelled, even while
// waiting for input.
//
// Handlers read their own prompts from the same reader, so no input is
// buffered away from them.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	table := handlers(a)

	for {
		fmt.Fprint(out, "pk> ")
		line, err := readContext(ctx, func() (string, error) { return readLine(reader) })
		if err != nil {
			fmt.Fprintln(out)
			return
		}

		word, rest := splitCommand(line)
		if word == "" {
			continue
		}

		var args []string
		if rest != "" {
			args = []string{rest}
		}

		cmd := ParseCommand(word)
		switch cmd {
		case CmdHelp:
			fmt.Fprintln(out, helpText)
		case CmdExit:
			fmt.Fprintln(out, "Bye!")
			return
		case CmdUnknown:
			fmt.Fprintln(out, "Unknown command:", word)
		default:
			if err := table[cmd](ctx, args); err != nil {
				if ctx.Err() != nil {
					fmt.Fprintln(out)
					return
				}
				fmt.Fprintln(out, "Error:", err)
			}
		}
	}
}

// splitCommand returns the first word of line and the remainder with only
// the separating and trailing whitespace removed.
func splitCommand(line string) (string, string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}
