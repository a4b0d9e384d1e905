package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/issuectl/internal/api"
	"github.com/colonyops/issuectl/internal/commands"
	"github.com/colonyops/issuectl/internal/core/auth"
	"github.com/colonyops/issuectl/internal/core/config"
	"github.com/colonyops/issuectl/internal/core/notify"
	"github.com/colonyops/issuectl/internal/core/styles"
	"github.com/colonyops/issuectl/internal/data/db"
	"github.com/colonyops/issuectl/internal/data/stores"
	"github.com/colonyops/issuectl/internal/issuectl"
	"github.com/colonyops/issuectl/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		clientApp = &issuectl.App{}
		database  *db.DB
		toaster   *notify.Toaster
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "issuectl",
		Usage:     "Work with your issue tracker from the terminal",
		UsageText: "issuectl [global options] command [command options]",
		Description: `issuectl is a command line client for the issue-tracker service:
sign in once and manage projects, issues, and comments from your shell.

Run 'issuectl login' first; the credential is stored locally and attached
to every request until you run 'issuectl logout'.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ISSUECTL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/issuectl.log)",
				Sources:     cli.EnvVars("ISSUECTL_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ISSUECTL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("ISSUECTL_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "server",
				Usage:       "base URL of the tracker API (overrides config)",
				Sources:     cli.EnvVars("ISSUECTL_SERVER"),
				Destination: &flags.Server,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/issuectl.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "issuectl.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.Server != "" {
				cfg.Server = flags.Server
			}

			database, err = db.Open(flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			creds := stores.NewCredentialStore(database)
			client := api.NewClient(cfg.Server, creds, api.WithTimeout(cfg.Timeout()))
			session := auth.NewController(client.Auth(), creds)

			// The toaster is the single rendering consumer of the bus;
			// commands only ever publish through the bus.
			bus := notify.NewBus()
			toaster = notify.NewToaster(bus, notify.WithRenderFunc(func(n notify.Notification) {
				fmt.Fprintln(os.Stderr, styles.RenderNotification(n))
			}))

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*clientApp = *issuectl.NewApp(session, client, bus, cfg, database)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if toaster != nil {
				toaster.Detach()
			}

			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	app = commands.NewLoginCmd(flags, clientApp).Register(app)
	app = commands.NewSignupCmd(flags, clientApp).Register(app)
	app = commands.NewLogoutCmd(flags, clientApp).Register(app)
	app = commands.NewWhoamiCmd(flags, clientApp).Register(app)
	app = commands.NewProjectCmd(flags, clientApp).Register(app)
	app = commands.NewIssueCmd(flags, clientApp).Register(app)
	app = commands.NewCommentCmd(flags, clientApp).Register(app)

	exitCode := 0
	if runErr := app.Run(ctx, os.Args); runErr != nil {
		if msg := runErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}
