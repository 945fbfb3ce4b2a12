package main

import (
	"context"
	"log"
	"os"

	"github.com/thomas-vilte/ghissues/internal/commands/issues"
	"github.com/thomas-vilte/ghissues/internal/config"
	"github.com/thomas-vilte/ghissues/internal/i18n"
	"github.com/thomas-vilte/ghissues/internal/services"
	"github.com/thomas-vilte/ghissues/internal/ui"
	"github.com/thomas-vilte/ghissues/internal/vcs/github"
	"github.com/urfave/cli/v3"
)

func main() {
	translations, err := i18n.NewTranslations(config.LanguageFromEnv(), config.LocalesDirFromEnv())
	if err != nil {
		log.Fatalf("Error loading translations: %v", err)
	}

	app := initializeApp(translations)

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp(translations *i18n.Translations) *cli.Command {
	provider := func(ctx context.Context, cfg *config.Config) (issues.IssueService, error) {
		client := github.NewGitHubClient(cfg.Owner, cfg.Repo, cfg.Token)
		return services.NewIssueService(client), nil
	}

	return issues.NewIssuesCommandFactory(provider, os.Stdout, os.Stderr).CreateCommand(translations)
}
