package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/issuectl"
)

type LoginCmd struct {
	flags *Flags
	app   *issuectl.App

	// flags
	email    string
	password string
}

// NewLoginCmd creates a new login command
func NewLoginCmd(flags *Flags, app *issuectl.App) *LoginCmd {
	return &LoginCmd{flags: flags, app: app}
}

// Register adds the login command to the application
func (cmd *LoginCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "login",
		Usage:     "Sign in to the tracker",
		UsageText: "issuectl login [--email EMAIL]",
		Description: `Signs in with your email and password and stores the returned credential
locally so later commands run authenticated.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "account email (prompted when omitted)",
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "password",
				Usage:       "account password (prompted when omitted; prefer the prompt)",
				Destination: &cmd.password,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LoginCmd) run(ctx context.Context, _ *cli.Command) error {
	email := cmd.email
	if email == "" {
		var err error
		if email, err = promptLine("Email: "); err != nil {
			return err
		}
	}

	password := cmd.password
	if password == "" {
		var err error
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	user, err := cmd.app.Session.Login(ctx, email, password)
	if err != nil {
		cmd.app.Bus.Errorf("login failed: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("signed in as %s", user.Email)
	return nil
}
