package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file overriding every field
		path := writeConfig(t, `
log-level: debug
http-port: "8081"
redis:
  host: cache
  port: "6380"
cache:
  ttl: 5m
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: the file values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 5*time.Minute, conf.Cache.TTL)
	})

	t.Run("Defaults for missing fields", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: warn\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: defaults are filled in
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Cache.TTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and a conflicting environment variable
		path := writeConfig(t, "http-port: \"8081\"\n")
		t.Setenv("HTTP_PORT", "7070")

		// When: loading it
		conf := MustLoad(path)

		// Then: the environment wins
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
