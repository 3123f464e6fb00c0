package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/config"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	"github.com/dmitrijs2005/passkeeper/internal/vault"
)

// CredentialStore is the part of vault.Service the front end calls.
type CredentialStore interface {
	Store(ctx context.Context, site, username, password string) (string, error)
	StoreSealed(ctx context.Context, site, username, password string, master []byte) (string, error)
	Retrieve(ctx context.Context, site string) (vault.Record, bool, error)
	Reveal(ctx context.Context, site string, master []byte) (string, error)
}

// App holds everything a command handler needs.
type App struct {
	config *config.Config
	store  CredentialStore
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewApp builds an App reading from in and writing to out. Secrets are read
// without echo when in is a terminal.
func NewApp(cfg *config.Config, store CredentialStore, logger logging.Logger, in io.Reader, out io.Writer) *App {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &App{
		config: cfg,
		store:  store,
		logger: logger.With("component", "cli"),
		reader: bufio.NewReader(in),
		out:    out,
		fd:     fd,
	}
}

type handlerFunc func(ctx context.Context, args []string) error

// handlers is the dispatch table from Command to handler.
func handlers(a execIface) map[Command]handlerFunc {
	return map[Command]handlerFunc{
		CmdGenerate: a.Generate,
		CmdCheck:    a.Check,
		CmdStore:    a.Store,
		CmdRetrieve: a.Retrieve,
		CmdReveal:   a.Reveal,
	}
}

// Run executes the command in args, or starts the REPL when args is empty.
// A cancelled interactive session returns ctx.Err().
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.logger.Debug(ctx, "starting interactive session", "store", a.config.StorePath, "backend", a.config.Backend)
		fmt.Fprintln(a.out, "Password Manager (type 'help' for commands)")
		runREPL(ctx, a, a.reader, a.out)
		return ctx.Err()
	}

	cmd := ParseCommand(args[0])
	switch cmd {
	case CmdHelp:
		fmt.Fprintln(a.out, helpText)
		return nil
	case CmdExit:
		return nil
	case CmdUnknown:
		return fmt.Errorf("%w: unknown command %q", common.ErrInvalidArgument, args[0])
	}

	a.logger.Debug(ctx, "running command", "command", cmd.String())
	return handlers(a)[cmd](ctx, args[1:])
}

func (a *App) prompt(ctx context.Context, label string) (string, error) {
	return readContext(ctx, func() (string, error) {
		return GetSimpleText(a.reader, label, a.out)
	})
}

func (a *App) secret(ctx context.Context, label string) ([]byte, error) {
	return GetPassword(ctx, a.reader, label, a.out, a.fd)
}
