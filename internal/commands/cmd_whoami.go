package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/issuectl"
	"github.com/colonyops/issuectl/pkg/iojson"
)

type WhoamiCmd struct {
	flags *Flags
	app   *issuectl.App

	// flags
	jsonOutput bool
}

// NewWhoamiCmd creates a new whoami command
func NewWhoamiCmd(flags *Flags, app *issuectl.App) *WhoamiCmd {
	return &WhoamiCmd{flags: flags, app: app}
}

// Register adds the whoami command to the application
func (cmd *WhoamiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "whoami",
		Usage:     "Show the signed-in user",
		UsageText: "issuectl whoami [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *WhoamiCmd) run(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	user, _ := cmd.app.Session.CurrentUser()

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, user)
	}

	fmt.Fprintf(out, "%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	return nil
}
