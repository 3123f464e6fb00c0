package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/cryptox"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
)

const notFoundMessage = "No password found for this site."

// Generate prints a random password. The optional first argument is the
// length; it defaults to the configured length and is clamped to the
// interactive bounds.
func (a *App) Generate(ctx context.Context, args []string) error {
	length := a.config.DefaultLength
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: length %q is not a number", common.ErrInvalidArgument, args[0])
		}
		length = n
	}

	if clamped := passgen.Clamp(length); clamped != length {
		fmt.Fprintf(a.out, "Length adjusted to %d (allowed %d-%d)\n", clamped, passgen.MinUILength, passgen.MaxUILength)
		length = clamped
	}

	password, err := passgen.Generate(length)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Generated Password: %s\n", password)
	fmt.Fprintf(a.out, "Password Strength: %s\n", strength.Classify(password))
	return nil
}

// Check reads a password and prints its strength with hints for every
// unmet criterion.
func (a *App) Check(ctx context.Context, _ []string) error {
	pw, err := a.secret(ctx, "Enter password")
	if err != nil {
		return err
	}
	defer cryptox.Wipe(pw)

	c := strength.Evaluate(string(pw))
	fmt.Fprintf(a.out, "Password Strength: %s\n", c.Level())
	if missing := c.Missing(); len(missing) > 0 {
		fmt.Fprintf(a.out, "Missing: %s\n", strings.Join(missing, ", "))
	}
	return nil
}

// Store prompts for username and password (and the site unless given) and
// saves the credential. With -seal it also asks for a master password and
// keeps an encrypted copy that reveal can open.
func (a *App) Store(ctx context.Context, args []string) error {
	site, seal := parseSiteArgs(args)

	site, err := a.siteOrPrompt(ctx, site)
	if err != nil {
		return err
	}

	username, err := a.prompt(ctx, "Enter username")
	if err != nil {
		return err
	}

	pw, err := a.secret(ctx, "Enter password")
	if err != nil {
		return err
	}
	defer cryptox.Wipe(pw)

	var msg string
	if seal {
		master, err := a.secret(ctx, "Enter master password")
		if err != nil {
			return err
		}
		defer cryptox.Wipe(master)
		msg, err = a.store.StoreSealed(ctx, site, username, string(pw), master)
		if err != nil {
			return err
		}
	} else {
		msg, err = a.store.Store(ctx, site, username, string(pw))
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

// Retrieve prints the username and password hash stored for a site.
func (a *App) Retrieve(ctx context.Context, args []string) error {
	site, _ := parseSiteArgs(args)

	site, err := a.siteOrPrompt(ctx, site)
	if err != nil {
		return err
	}

	rec, ok, err := a.store.Retrieve(ctx, site)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, notFoundMessage)
		return nil
	}

	fmt.Fprintf(a.out, "Username: %s\n", rec.Username)
	fmt.Fprintf(a.out, "Password Hash: %s\n", rec.PasswordHash)
	if rec.Sealed != nil {
		fmt.Fprintln(a.out, "A sealed copy is stored; use 'reveal' to decrypt it.")
	}
	return nil
}

// Reveal asks for the master password and prints the decrypted password of
// a record stored with -seal.
func (a *App) Reveal(ctx context.Context, args []string) error {
	site, _ := parseSiteArgs(args)

	site, err := a.siteOrPrompt(ctx, site)
	if err != nil {
		return err
	}

	master, err := a.secret(ctx, "Enter master password")
	if err != nil {
		return err
	}
	defer cryptox.Wipe(master)

	password, err := a.store.Reveal(ctx, site, master)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, notFoundMessage)
		return nil
	case errors.Is(err, common.ErrNotSealed):
		fmt.Fprintln(a.out, "Only the password hash is stored for this site; nothing to reveal.")
		return nil
	case errors.Is(err, common.ErrDecrypt):
		fmt.Fprintln(a.out, "Wrong master password.")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(a.out, "Password: %s\n", password)
	return nil
}

func (a *App) siteOrPrompt(ctx context.Context, site string) (string, error) {
	if site == "" {
		var err error
		site, err = a.prompt(ctx, "Enter site name")
		if err != nil {
			return "", err
		}
	}
	if site == "" {
		return "", fmt.Errorf("%w: site name is empty", common.ErrInvalidArgument)
	}
	return site, nil
}

// parseSiteArgs joins args with single spaces, strips a leading or trailing
// -seal switch and returns the rest as the site name. Spacing inside the
// name is kept, so "my  site" typed in the REPL stays "my  site".
func parseSiteArgs(args []string) (string, bool) {
	site := strings.TrimSpace(strings.Join(args, " "))
	seal := false

	for _, sw := range []string{"--seal", "-seal"} {
		switch {
		case site == sw:
			return "", true
		case strings.HasPrefix(site, sw+" "):
			site, seal = strings.TrimSpace(site[len(sw):]), true
		case strings.HasSuffix(site, " "+sw):
			site, seal = strings.TrimSpace(site[:len(site)-len(sw)]), true
		}
	}
	return site, seal
}
