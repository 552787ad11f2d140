package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
  user: brigade
  password: secret
  database: kitchen
rabbitmq:
  host: localhost
  port: 5672
  user: guest
  password: guest
kitchen:
  max_concurrent_orders: 25
  admission_rules:
    - "active_orders < max_concurrent - 5"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "kitchen", cfg.Database.Database)
	assert.Equal(t, 5672, cfg.RabbitMQ.Port)
	assert.Equal(t, 25, cfg.Kitchen.MaxConcurrentOrders)
	assert.Equal(t, []string{"active_orders < max_concurrent - 5"}, cfg.Kitchen.AdmissionRules)
}

func TestLoadDefaultsMaxConcurrent(t *testing.T) {
	path := writeConfig(t, `
kitchen:
  admission_rules: []
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Kitchen.MaxConcurrentOrders)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "kitchen: [not: a: mapping")
	_, err := Load(path)
	assert.Error(t, err)
}
