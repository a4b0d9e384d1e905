package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/issuectl"
)

type SignupCmd struct {
	flags *Flags
	app   *issuectl.App

	// flags
	name  string
	email string
}

// NewSignupCmd creates a new signup command
func NewSignupCmd(flags *Flags, app *issuectl.App) *SignupCmd {
	return &SignupCmd{flags: flags, app: app}
}

// Register adds the signup command to the application
func (cmd *SignupCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "signup",
		Usage:     "Create an account and sign in",
		UsageText: "issuectl signup [--name NAME] [--email EMAIL]",
		Description: `Registers a new account, then signs in with the same credentials.
The password is always prompted for, without echo.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "display name (prompted when omitted)",
				Destination: &cmd.name,
			},
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "account email (prompted when omitted)",
				Destination: &cmd.email,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *SignupCmd) run(ctx context.Context, _ *cli.Command) error {
	name := cmd.name
	if name == "" {
		var err error
		if name, err = promptLine("Name: "); err != nil {
			return err
		}
	}

	email := cmd.email
	if email == "" {
		var err error
		if email, err = promptLine("Email: "); err != nil {
			return err
		}
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	user, err := cmd.app.Session.Signup(ctx, name, email, password)
	if err != nil {
		cmd.app.Bus.Errorf("signup failed: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("welcome %s, signed in as %s", user.Name, user.Email)
	return nil
}
