package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTemp(t, `
database:
  host: localhost
  user: foodcourt
  database: foodcourt
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10, cfg.Database.MaxConns)
	assert.Nil(t, cfg.RabbitMQ)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeTemp(t, `
server:
  port: 8080
database:
  host: db.internal
  port: 5433
  user: svc
  password: secret
  database: foodcourt
  max_conns: 4
rabbitmq:
  host: mq.internal
  user: guest
  password: guest
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 4, cfg.Database.MaxConns)
	require.NotNil(t, cfg.RabbitMQ)
	assert.Equal(t, 5672, cfg.RabbitMQ.Port)
	assert.Equal(t, "/", cfg.RabbitMQ.VHost)
}

func TestLoadRejectsIncompleteDatabase(t *testing.T) {
	path := writeTemp(t, `
database:
  host: localhost
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsIncompleteRabbit(t *testing.T) {
	path := writeTemp(t, `
database:
  host: localhost
  user: svc
  database: foodcourt
rabbitmq:
  port: 5672
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
