package issues

import (
	"context"
	"io"
	"os"

	"github.com/thomas-vilte/ghissues/internal/config"
	"github.com/thomas-vilte/ghissues/internal/i18n"
	"github.com/thomas-vilte/ghissues/internal/logger"
	"github.com/thomas-vilte/ghissues/internal/models"
	"github.com/thomas-vilte/ghissues/internal/ui"
	"github.com/thomas-vilte/ghissues/internal/version"
	"github.com/urfave/cli/v3"
)

// IssueService yields the open issues of the configured repository, pull
// requests already removed.
type IssueService interface {
	OpenIssues(ctx context.Context) ([]models.Issue, error)
}

// IssueServiceProvider builds the service once the configuration is known.
type IssueServiceProvider func(ctx context.Context, cfg *config.Config) (IssueService, error)

// IssuesCommandFactory is the factory to create the root ghissues command.
type IssuesCommandFactory struct {
	issueServiceProvider IssueServiceProvider
	stdout               io.Writer
	stderr               *os.File
}

// NewIssuesCommandFactory creates a new instance of the factory. The issue
// dump goes to stdout; logs and the spinner go to stderr.
func NewIssuesCommandFactory(provider IssueServiceProvider, stdout io.Writer, stderr *os.File) *IssuesCommandFactory {
	return &IssuesCommandFactory{
		issueServiceProvider: provider,
		stdout:               stdout,
		stderr:               stderr,
	}
}

// CreateCommand creates the root command.
func (f *IssuesCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:        "ghissues",
		Usage:       t.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: t.GetMessage("app_description", 0, map[string]interface{}{"Repo": config.DefaultOwner + "/" + config.DefaultRepo}),
		Flags:       f.createFlags(t),
		Action:      f.createListAction(t),
	}
}

func (f *IssuesCommandFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Usage:   t.GetMessage("flag_env_file", 0, nil),
			Value:   config.DefaultEnvFile,
			Sources: cli.EnvVars("GHISSUES_ENV_FILE"),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("flag_debug", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: t.GetMessage("flag_verbose", 0, nil),
		},
	}
}

func (f *IssuesCommandFactory) createListAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ctx = logger.WithLogger(ctx, logger.Initialize(f.stderr, cmd.Bool("debug"), cmd.Bool("verbose")))

		cfg, err := config.Load(cmd.String("env-file"))
		if err != nil {
			return err
		}

		if err := t.SetLanguage(cfg.Language); err != nil {
			logger.Debug(ctx, "language not available, keeping default", "language", cfg.Language)
		}

		ctx = logger.With(ctx, "repo", cfg.RepoSlug())
		logger.Debug(ctx, "configuration loaded", "config", cfg.String())

		svc, err := f.issueServiceProvider(ctx, cfg)
		if err != nil {
			return err
		}

		var issues []models.Issue
		msg := t.GetMessage("fetching_issues", 0, map[string]interface{}{"Repo": cfg.RepoSlug()})
		err = ui.WithSpinner(f.stderr, msg, func() error {
			var fetchErr error
			issues, fetchErr = svc.OpenIssues(ctx)
			return fetchErr
		})
		if err != nil {
			return err
		}

		logger.Info(ctx, t.GetMessage("issues_found", len(issues), map[string]interface{}{"Count": len(issues)}), "count", len(issues))

		ui.PrintIssues(f.stdout, issues)
		return nil
	}
}
