package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/issuectl"
)

type LogoutCmd struct {
	flags *Flags
	app   *issuectl.App
}

// NewLogoutCmd creates a new logout command
func NewLogoutCmd(flags *Flags, app *issuectl.App) *LogoutCmd {
	return &LogoutCmd{flags: flags, app: app}
}

// Register adds the logout command to the application
func (cmd *LogoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "logout",
		Usage:     "Sign out and discard the stored credential",
		UsageText: "issuectl logout",
		Description: `Invalidates the session server-side when the server is reachable, and
always clears the locally stored credential. Never fails.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *LogoutCmd) run(ctx context.Context, _ *cli.Command) error {
	cmd.app.Session.Logout(ctx)
	cmd.app.Bus.Infof("signed out")
	return nil
}
