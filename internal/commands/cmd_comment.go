package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/core/styles"
	"github.com/colonyops/issuectl/internal/issuectl"
	"github.com/colonyops/issuectl/pkg/iojson"
)

type CommentCmd struct {
	flags *Flags
	app   *issuectl.App

	// flags
	jsonOutput bool
	message    string
}

// NewCommentCmd creates a new comment command
func NewCommentCmd(flags *Flags, app *issuectl.App) *CommentCmd {
	return &CommentCmd{flags: flags, app: app}
}

// Register adds the comment command to the application
func (cmd *CommentCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "comment",
		Usage:     "Manage issue comments",
		UsageText: "issuectl comment <command>",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List an issue's comments",
				UsageText: "issuectl comment ls ISSUE_ID [--json]",
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
				Usage:     "Comment on an issue",
				UsageText: "issuectl comment new ISSUE_ID --message TEXT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "message",
						Aliases:     []string{"m"},
						Usage:       "comment body",
						Required:    true,
						Destination: &cmd.message,
					},
				},
				Action: cmd.runNew,
			},
		},
	})

	return app
}

func (cmd *CommentCmd) runList(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	issueID, err := parseID(c.Args().Get(0), "issue")
	if err != nil {
		return err
	}

	comments, err := cmd.app.API.Comments().List(ctx, issueID)
	if err != nil {
		return fmt.Errorf("list comments: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, comments)
	}

	if len(comments) == 0 {
		fmt.Fprintln(out, "No comments found")
		return nil
	}

	for _, comment := range comments {
		header := fmt.Sprintf("%s at %s", comment.AuthorName, comment.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintln(out, styles.Muted.Render(header))
		fmt.Fprintln(out, comment.Body)
		fmt.Fprintln(out)
	}
	return nil
}

func (cmd *CommentCmd) runNew(ctx context.Context, c *cli.Command) error {
	if err := requireAuth(ctx, cmd.app); err != nil {
		return err
	}

	issueID, err := parseID(c.Args().Get(0), "issue")
	if err != nil {
		return err
	}

	comment, err := cmd.app.API.Comments().Create(ctx, issueID, cmd.message)
	if err != nil {
		cmd.app.Bus.Errorf("add comment: %v", err)
		return cli.Exit("", 1)
	}

	cmd.app.Bus.Successf("commented on issue #%d", comment.IssueID)
	return nil
}
