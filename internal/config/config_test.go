package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/ghissues/internal/errors"
)

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad(t *testing.T) {
	t.Run("should read token from the environment", func(t *testing.T) {
		t.Setenv(TokenEnv, "ghp_env")
		unsetEnv(t, LanguageEnv)

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "ghp_env", cfg.Token)
		assert.Equal(t, DefaultOwner, cfg.Owner)
		assert.Equal(t, DefaultRepo, cfg.Repo)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "freeCodeCamp/freeCodeCamp", cfg.RepoSlug())
	})

	t.Run("should read token from env file", func(t *testing.T) {
		unsetEnv(t, TokenEnv)
		unsetEnv(t, LanguageEnv)

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GITHUB_PAT=ghp_file\nGHISSUES_LANG=es\n"), 0600))

		cfg, err := Load(envFile)

		require.NoError(t, err)
		assert.Equal(t, "ghp_file", cfg.Token)
		assert.Equal(t, "es", cfg.Language)
		assert.Equal(t, envFile, cfg.EnvFile)
	})

	t.Run("environment should win over env file", func(t *testing.T) {
		t.Setenv(TokenEnv, "ghp_env")

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GITHUB_PAT=ghp_file\n"), 0600))

		cfg, err := Load(envFile)

		require.NoError(t, err)
		assert.Equal(t, "ghp_env", cfg.Token)
	})

	t.Run("should ignore a malformed env file", func(t *testing.T) {
		t.Setenv(TokenEnv, "ghp_env")

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("this is = = not\"valid"), 0600))

		cfg, err := Load(envFile)

		require.NoError(t, err)
		assert.Equal(t, "ghp_env", cfg.Token)
	})

	t.Run("should fail when token is absent", func(t *testing.T) {
		unsetEnv(t, TokenEnv)

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrTokenMissing))
		assert.Contains(t, err.Error(), TokenEnv)
		assert.False(t, domainErrors.IsRecoverable(err))
	})

	t.Run("should accept an empty token that is set", func(t *testing.T) {
		t.Setenv(TokenEnv, "")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "", cfg.Token)
	})

	t.Run("should keep the token verbatim", func(t *testing.T) {
		t.Setenv(TokenEnv, " ghp_spaced ")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, " ghp_spaced ", cfg.Token)
	})

	t.Run("should find the env file in a parent directory", func(t *testing.T) {
		unsetEnv(t, TokenEnv)

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, DefaultEnvFile), []byte("GITHUB_PAT=ghp_parent\n"), 0600))
		child := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(child, 0755))
		t.Chdir(child)

		cfg, err := Load(DefaultEnvFile)

		require.NoError(t, err)
		assert.Equal(t, "ghp_parent", cfg.Token)
		realRoot, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(realRoot, DefaultEnvFile), cfg.EnvFile)
	})

	t.Run("nearest env file should win", func(t *testing.T) {
		unsetEnv(t, TokenEnv)

		root := t.TempDir()
		child := filepath.Join(root, "sub")
		require.NoError(t, os.MkdirAll(child, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, DefaultEnvFile), []byte("GITHUB_PAT=ghp_parent\n"), 0600))
		require.NoError(t, os.WriteFile(filepath.Join(child, DefaultEnvFile), []byte("GITHUB_PAT=ghp_child\n"), 0600))
		t.Chdir(child)

		cfg, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "ghp_child", cfg.Token)
	})
}

func TestFindEnvFile(t *testing.T) {
	t.Run("should leave paths with a directory part alone", func(t *testing.T) {
		path := filepath.Join("config", ".env")
		assert.Equal(t, path, findEnvFile(path))
	})

	t.Run("should return the name when nothing is found", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.Equal(t, "ghissues-test-nothing.env", findEnvFile("ghissues-test-nothing.env"))
	})
}

func TestLocalesDirFromEnv(t *testing.T) {
	unsetEnv(t, LocalesDirEnv)
	assert.Equal(t, "", LocalesDirFromEnv())

	t.Setenv(LocalesDirEnv, "/opt/ghissues/locales")
	assert.Equal(t, "/opt/ghissues/locales", LocalesDirFromEnv())
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{Token: "ghp_secret", Owner: "o", Repo: "r", Language: "en"}

	s := cfg.String()

	assert.NotContains(t, s, "ghp_secret")
	assert.Contains(t, s, "o/r")
}

func TestLanguageFromEnv(t *testing.T) {
	unsetEnv(t, LanguageEnv)
	assert.Equal(t, "en", LanguageFromEnv())

	t.Setenv(LanguageEnv, "es")
	assert.Equal(t, "es", LanguageFromEnv())
}
