package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/colonyops/issuectl/internal/core/auth"
	"github.com/colonyops/issuectl/internal/issuectl"
)

// ErrNotSignedIn gates authenticated commands.
var ErrNotSignedIn = errors.New("not signed in; run `issuectl login` first")

// requireAuth resolves the session (at most once per process) and rejects
// invocations that are not authenticated. Authenticated commands run iff the
// session status is authenticated.
func requireAuth(ctx context.Context, app *issuectl.App) error {
	app.Session.Resolve(ctx)
	if app.Session.Status() != auth.StatusAuthenticated {
		return ErrNotSignedIn
	}
	return nil
}

// parseID parses a positional numeric ID argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID %q", what, arg)
	}
	return id, nil
}

// promptLine reads a single line from stdin with a prompt on stderr.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the terminal without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}
