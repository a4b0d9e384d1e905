package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/api"
	"github.com/colonyops/issuectl/internal/core/styles"
	"github.com/colonyops/issuectl/internal/issuectl"
	"github.com/colonyops/issuectl/pkg/iojson"
)

type ProjectCmd struct {
	flags *Flags
	app   *issuectl.App

	// flags
	jsonOutput  bool
	name        string
	key         string
	description string
	memberEmail string
	memberRole  string
}

// NewProjectCmd creates a new project command
func NewProjectCmd(flags *Flags, app *issuectl.App) *ProjectCmd {
	return &ProjectCmd{flags: flags, app: app}
}

// Register adds the project command to the application
func (cmd *ProjectCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "project",
		Usage:     "Manage projects",
		UsageText: "issuectl project <command>",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List your projects",
				UsageText: "issuectl project ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "new",
				Usage:     "Create a project",
				UsageText: "issuectl project new --name NAME --key KEY [--description TEXT]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "name",
						Usage:       "project name",
						Required:    true,
						Destination: &cmd.name,
					},
					&cli.StringFlag{
						Name:        "key",
						Usage:       "short project key, e.g. TRK",
						Required:    true,
						Destination: &cmd.key,
					},
					&cli.StringFlag{
						Name:        "description",
						Usage:       "project description",
						Destination: &cmd.description,
					},
				},
				Action: cmd.runNew,
			},
			{
				Name:      "member",
				Usage:     "Add a member to a project",
				UsageText: "issuectl project member PROJECT_ID --email EMAIL [--role ROLE]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "email",
						Usage:       "email of the user to add",
						Required:    true,
						Destination: &cmd.memberEmail,
					},
					&cli.StringFlag{
						Name:        "role",
						Usage:       "membership role",
						Value:       "member",
						Destination: &cmd.memberRole,
					},
				},
				Action: cmd.runMember,
			},
		},
	})

	return app
}

func (cmd *ProjectCmd) runList(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	projects, err := cmd.app.API.Projects().List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(out, "No projects found")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, styles.Header.Render("ID")+"\t"+styles.Header.Render("KEY")+"\t"+styles.Header.Render("NAME")+"\t"+styles.Header.Render("DESCRIPTION"))
	for _, p := range projects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Key, p.Name, p.Description)
	}
	return tw.Flush()
}

func (cmd *ProjectCmd) runNew(ctx context.Context, _ *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	project, err := cmd.app.API.Projects().Create(ctx, api.ProjectCreate{
		Name:        cmd.name,
		Key:         cmd.key,
		Description: cmd.description,
	})
	if err != nil {
		cmd.app.Bus.Errorf("create project: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("created project %s (%s)", project.Name, project.Key)
	return nil
}

func (cmd *ProjectCmd) runMember(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	projectID, err := parseID(c.Args().Get(0), "project")
	if err != nil {
		return err
	}

	member, err := cmd.app.API.Projects().AddMember(ctx, projectID, cmd.memberEmail, cmd.memberRole)
	if err != nil {
		cmd.app.Bus.Errorf("add member: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("added %s as %s", member.UserEmail, member.Role)
	return nil
}
