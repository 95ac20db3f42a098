package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finreport/aws-spend-report-go/internal/shared/types"
)

type silentConsole struct{}

func (silentConsole) Print(a ...interface{})                   {}
func (silentConsole) Printf(format string, a ...interface{})   {}
func (silentConsole) Println(a ...interface{})                 {}
func (silentConsole) LogInfo(format string, a ...interface{})  {}
func (silentConsole) LogWarning(format string, a ...interface{}) {
}
func (silentConsole) LogError(format string, a ...interface{})   {}
func (silentConsole) LogSuccess(format string, a ...interface{}) {}
func (silentConsole) Status(message string) types.StatusHandle   { return nil }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
profile: billing
region: eu-west-1
database: billing
table_name: line_items
user_owner_regexp: "[a-z]+\\.[a-z]+"
report_threshold: 5.5
admins:
  - alice
  - bob@example.com
dry_run: true
`)

	repo := NewConfigRepository(silentConsole{})
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "billing", cfg.Profile)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, "line_items", cfg.TableName)
	assert.Equal(t, `[a-z]+\.[a-z]+`, cfg.UserOwnerRegexp)
	assert.Equal(t, 5.5, cfg.ReportThreshold)
	assert.Equal(t, []string{"alice", "bob@example.com"}, cfg.Admins)
	assert.True(t, cfg.DryRun)
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
region = "us-east-1"
database = "billing"
table_name = "line_items"
report_threshold = 2.0
`)

	repo := NewConfigRepository(silentConsole{})
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 2.0, cfg.ReportThreshold)
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"region":"us-west-2","database":"billing"}`)

	repo := NewConfigRepository(silentConsole{})
	cfg, err := repo.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "billing", cfg.Database)
}

func TestLoadConfigFileUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.ini", "region=us")

	repo := NewConfigRepository(silentConsole{})
	_, err := repo.LoadConfigFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFileMissing(t *testing.T) {
	repo := NewConfigRepository(silentConsole{})
	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadAccountsFile(t *testing.T) {
	path := writeFile(t, "accounts.csv", "111122223333,Project X\n444455556666,Sandbox\n")

	repo := NewConfigRepository(silentConsole{})
	accounts, err := repo.LoadAccountsFile(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"111122223333": "Project X",
		"444455556666": "Sandbox",
	}, accounts)
}

func TestLoadAccountsFileSkipsMalformedRows(t *testing.T) {
	path := writeFile(t, "accounts.csv", "111122223333,Project X\nonly-one-column\n,\n444455556666,Sandbox\n")

	repo := NewConfigRepository(silentConsole{})
	accounts, err := repo.LoadAccountsFile(path)
	require.NoError(t, err)

	assert.Len(t, accounts, 2)
	assert.Equal(t, "Project X", accounts["111122223333"])
	assert.Equal(t, "Sandbox", accounts["444455556666"])
}
