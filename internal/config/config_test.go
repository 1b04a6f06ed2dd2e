package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  engine: postgres
  host: localhost
  port: 5432
  user: mylance
  password: secret
  name: mylance
openai:
  apiKey: sk-test
  model: gpt-4
auth:
  apiKeys:
    dashboard: key-123
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Engine)
	assert.Equal(t, "gpt-4", cfg.OpenAI.Model)
	assert.Equal(t, "key-123", cfg.Auth.APIKeys["dashboard"])
}

func TestLoadDefaultsEngine(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Database.Engine)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db"
	cfg.Database.Port = 5432
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Name = "mylance"

	assert.Equal(t, "postgres://u:p@db:5432/mylance?sslmode=disable", cfg.PostgresDSN())
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db"
	cfg.Database.Port = 3306
	cfg.Database.User = "u"
	cfg.Database.Password = "p"
	cfg.Database.Name = "mylance"

	dsn := cfg.MySQLDSN()
	assert.Equal(t, "u:p@tcp(db:3306)/mylance?parseTime=true&charset=utf8mb4&loc=UTC&clientFoundRows=true", dsn)

	// Matched-rows reporting is what the repositories rely on to tell a
	// missing profile apart from an UPDATE that changed nothing.
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestDSNUnknownEngine(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Engine = "oracle"
	_, err := cfg.DSN()
	assert.Error(t, err)
}
