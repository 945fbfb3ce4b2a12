package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	domainErrors "github.com/thomas-vilte/ghissues/internal/errors"
)

const (
	TokenEnv      = "GITHUB_PAT"
	LanguageEnv   = "GHISSUES_LANG"
	LocalesDirEnv = "GHISSUES_LOCALES_DIR"

	DefaultEnvFile = ".env"
	DefaultOwner   = "freeCodeCamp"
	DefaultRepo    = "freeCodeCamp"
	defaultLang    = "en"
)

type Config struct {
	Token    string
	Owner    string
	Repo     string
	Language string
	EnvFile  string
}

// Load reads the configuration from the process environment. envFile is
// loaded first on a best-effort basis; variables already set in the
// environment take precedence over the file. A bare file name is searched
// for in the working directory and then in each parent directory.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	envFile = findEnvFile(envFile)

	// A missing or malformed file is ignored; GITHUB_PAT may still come from
	// the real environment.
	_ = godotenv.Load(envFile)

	// Only an unset variable is fatal. An empty value is sent as is and
	// rejected by GitHub.
	token, ok := os.LookupEnv(TokenEnv)
	if !ok {
		return nil, domainErrors.ErrTokenMissing
	}

	lang := os.Getenv(LanguageEnv)
	if lang == "" {
		lang = defaultLang
	}

	cfg := &Config{
		Token:    token,
		Owner:    DefaultOwner,
		Repo:     DefaultRepo,
		Language: lang,
		EnvFile:  envFile,
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LanguageFromEnv returns the UI language without requiring a token, so
// diagnostics for a missing token can already be translated.
func LanguageFromEnv() string {
	if lang := os.Getenv(LanguageEnv); lang != "" {
		return lang
	}
	return defaultLang
}

// LocalesDirFromEnv returns the directory holding extra active.*.toml
// files, or "" when only the embedded locales are used.
func LocalesDirFromEnv() string {
	return os.Getenv(LocalesDirEnv)
}

// findEnvFile returns the nearest existing name in the working directory or
// its parents. Paths with a directory part, and names found nowhere, are
// returned unchanged.
func findEnvFile(name string) string {
	if filepath.Base(name) != name {
		return name
	}

	dir, err := os.Getwd()
	if err != nil {
		return name
	}

	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return name
		}
		dir = parent
	}
}

func (c *Config) RepoSlug() string {
	return c.Owner + "/" + c.Repo
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Repo:%s Language:%s EnvFile:%s Token:%s}", c.RepoSlug(), c.Language, c.EnvFile, maskToken(c.Token))
}

func maskToken(token string) string {
	if token == "" {
		return "<unset>"
	}
	return "****"
}

func validateConfig(cfg *Config) error {
	if cfg.Owner == "" || cfg.Repo == "" {
		return domainErrors.NewAppError(domainErrors.TypeConfiguration, "repository target is not defined", nil).
			WithContext("repo", cfg.RepoSlug())
	}
	if cfg.Language == "" {
		return domainErrors.ErrLanguageMissing
	}
	return nil
}
