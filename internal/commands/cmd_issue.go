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

type IssueCmd struct {
	flags *Flags
	app   *issuectl.App

	// flags
	jsonOutput  bool
	title       string
	description string
	status      string
	priority    string
	assignee    int64
	search      string
	sort        string
}

// NewIssueCmd creates a new issue command
func NewIssueCmd(flags *Flags, app *issuectl.App) *IssueCmd {
	return &IssueCmd{flags: flags, app: app}
}

// Register adds the issue command to the application
func (cmd *IssueCmd) Register(app *cli.Command) *cli.Command {
	jsonFlag := &cli.BoolFlag{
		Name:        "json",
		Usage:       "output as JSON",
		Destination: &cmd.jsonOutput,
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "issue",
		Usage:     "Manage issues",
		UsageText: "issuectl issue <command>",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List a project's issues",
				UsageText: "issuectl issue ls PROJECT_ID [--status S] [--priority P] [--assignee ID] [--search TEXT]",
				Flags: []cli.Flag{
					jsonFlag,
					&cli.StringFlag{
						Name:        "status",
						Usage:       "filter by status (todo, in_progress, done)",
						Destination: &cmd.status,
					},
					&cli.StringFlag{
						Name:        "priority",
						Usage:       "filter by priority (low, medium, high)",
						Destination: &cmd.priority,
					},
					&cli.Int64Flag{
						Name:        "assignee",
						Usage:       "filter by assignee user ID",
						Destination: &cmd.assignee,
					},
					&cli.StringFlag{
						Name:        "search",
						Aliases:     []string{"q"},
						Usage:       "match title or description",
						Destination: &cmd.search,
					},
					&cli.StringFlag{
						Name:        "sort",
						Usage:       "sort field (created_at, updated_at, priority, status)",
						Destination: &cmd.sort,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "new",
				Usage:     "File a new issue",
				UsageText: "issuectl issue new PROJECT_ID --title TEXT [--description TEXT] [--priority P] [--assignee ID]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "title",
						Usage:       "issue title",
						Required:    true,
						Destination: &cmd.title,
					},
					&cli.StringFlag{
						Name:        "description",
						Usage:       "issue description",
						Destination: &cmd.description,
					},
					&cli.StringFlag{
						Name:        "priority",
						Usage:       "priority (low, medium, high)",
						Destination: &cmd.priority,
					},
					&cli.Int64Flag{
						Name:        "assignee",
						Usage:       "assignee user ID",
						Destination: &cmd.assignee,
					},
				},
				Action: cmd.runNew,
			},
			{
				Name:      "get",
				Usage:     "Show a single issue",
				UsageText: "issuectl issue get ISSUE_ID [--json]",
				Flags:     []cli.Flag{jsonFlag},
				Action:    cmd.runGet,
			},
			{
				Name:      "edit",
				Usage:     "Update fields of an issue",
				UsageText: "issuectl issue edit ISSUE_ID [--title TEXT] [--status S] [--priority P] [--assignee ID]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "title",
						Usage:       "new title",
						Destination: &cmd.title,
					},
					&cli.StringFlag{
						Name:        "description",
						Usage:       "new description",
						Destination: &cmd.description,
					},
					&cli.StringFlag{
						Name:        "status",
						Usage:       "new status (todo, in_progress, done)",
						Destination: &cmd.status,
					},
					&cli.StringFlag{
						Name:        "priority",
						Usage:       "new priority (low, medium, high)",
						Destination: &cmd.priority,
					},
					&cli.Int64Flag{
						Name:        "assignee",
						Usage:       "new assignee user ID",
						Destination: &cmd.assignee,
					},
				},
				Action: cmd.runEdit,
			},
			{
				Name:      "rm",
				Usage:     "Delete an issue",
				UsageText: "issuectl issue rm ISSUE_ID",
				Action:    cmd.runDelete,
			},
		},
	})

	return app
}

func (cmd *IssueCmd) runList(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	projectID, err := parseID(c.Args().Get(0), "project")
	if err != nil {
		return err
	}

	issues, err := cmd.app.API.Issues().List(ctx, projectID, api.IssueFilter{
		Search:   cmd.search,
		Status:   cmd.status,
		Priority: cmd.priority,
		Assignee: cmd.assignee,
		Sort:     cmd.sort,
	})
	if err != nil {
		return fmt.Errorf("list issues: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, issues)
	}

	if len(issues) == 0 {
		fmt.Fprintln(out, "No issues found")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, styles.Header.Render("ID")+"\t"+styles.Header.Render("STATUS")+"\t"+styles.Header.Render("PRIORITY")+"\t"+styles.Header.Render("TITLE")+"\t"+styles.Header.Render("ASSIGNEE"))
	for _, issue := range issues {
		assignee := ""
		if issue.AssigneeName != nil {
			assignee = *issue.AssigneeName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", issue.ID, issue.Status, issue.Priority, issue.Title, assignee)
	}
	return tw.Flush()
}

func (cmd *IssueCmd) runNew(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	projectID, err := parseID(c.Args().Get(0), "project")
	if err != nil {
		return err
	}

	in := api.IssueCreate{
		Title:       cmd.title,
		Description: cmd.description,
		Priority:    cmd.priority,
	}
	if cmd.assignee != 0 {
		in.AssigneeID = &cmd.assignee
	}

	issue, err := cmd.app.API.Issues().Create(ctx, projectID, in)
	if err != nil {
		cmd.app.Bus.Errorf("create issue: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("created issue #%d: %s", issue.ID, issue.Title)
	return nil
}

func (cmd *IssueCmd) runGet(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	issueID, err := parseID(c.Args().Get(0), "issue")
	if err != nil {
		return err
	}

	issue, err := cmd.app.API.Issues().Get(ctx, issueID)
	if err != nil {
		return fmt.Errorf("get issue: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, issue)
	}

	fmt.Fprintf(out, "%s #%d: %s\n", styles.Header.Render("Issue"), issue.ID, issue.Title)
	fmt.Fprintf(out, "Status: %s  Priority: %s\n", issue.Status, issue.Priority)
	fmt.Fprintf(out, "Reporter: %s\n", issue.ReporterName)
	if issue.AssigneeName != nil {
		fmt.Fprintf(out, "Assignee: %s\n", *issue.AssigneeName)
	}
	if issue.Description != "" {
		fmt.Fprintf(out, "\n%s\n", issue.Description)
	}
	return nil
}

func (cmd *IssueCmd) runEdit(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	issueID, err := parseID(c.Args().Get(0), "issue")
	if err != nil {
		return err
	}

	// Only explicitly set flags become part of the patch.
	var in api.IssueUpdate
	if c.IsSet("title") {
		in.Title = &cmd.title
	}
	if c.IsSet("description") {
		in.Description = &cmd.description
	}
	if c.IsSet("status") {
		in.Status = &cmd.status
	}
	if c.IsSet("priority") {
		in.Priority = &cmd.priority
	}
	if c.IsSet("assignee") {
		in.AssigneeID = &cmd.assignee
	}

	issue, err := cmd.app.API.Issues().Update(ctx, issueID, in)
	if err != nil {
		cmd.app.Bus.Errorf("update issue: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("updated issue #%d", issue.ID)
	return nil
}

func (cmd *IssueCmd) runDelete(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	issueID, err := parseID(c.Args().Get(0), "issue")
	if err != nil {
		return err
	}

	if err := cmd.app.API.Issues().Delete(ctx, issueID); err != nil {
		cmd.app.Bus.Errorf("delete issue: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("deleted issue #%d", issueID)
	return nil
}
