package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
table_alias = [["org", "organizations"], ["ded", "deductions"]]

[[tables]]
email = { sanitize = "scramble_email" }
name = { sanitize = "fake_name" }
created_at = {}

[[tables]]
ssn = { sanitize = "zero" }
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"org", "organizations"}, {"ded", "deductions"}}, cfg.TableAlias)
	require.Len(t, cfg.Tables, 2)
	require.Equal(t, "scramble_email", cfg.Tables[0]["email"].Sanitize)
	require.Equal(t, "fake_name", cfg.Tables[0]["name"].Sanitize)
	require.Empty(t, cfg.Tables[0]["created_at"].Sanitize)
	require.Equal(t, "zero", cfg.Tables[1]["ssn"].Sanitize)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{
		TableAlias: [][]string{{"org", "organizations"}},
		Tables: []Table{
			{"email": Column{Sanitize: "scramble_email"}},
		},
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestResolveTable(t *testing.T) {
	t.Parallel()

	cfg := &Config{TableAlias: [][]string{{"org", "organizations"}}}
	require.Equal(t, "organizations", cfg.ResolveTable("org"))
	require.Equal(t, "deduction", cfg.ResolveTable("deduction"))
}
