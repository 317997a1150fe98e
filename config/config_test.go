package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testConfigYAML = `
env:
  serviceName: gatekeeper
  log:
    level: info
storage:
  driver: sqlite
sqlite:
  path: test.db
auth:
  bcryptCost: 4
session:
  store: memory
  ttl: 2h
  cookie:
    name: sid
    sameSite: strict
`

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_SLIDING", "true")
	t.Setenv("AUTH_BCRYPTCOST", "5")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "gatekeeper", cfg.Env.ServiceName)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "test.db", cfg.SQLite.Path)
	assert.Equal(t, 5, cfg.Auth.BcryptCost)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Session.Sliding)
	assert.Equal(t, 15*time.Minute, cfg.Session.SlidingInterval)
	assert.Equal(t, "sid", cfg.Session.Cookie.Name)
	assert.Equal(t, http.SameSiteStrictMode, cfg.Session.Cookie.SameSiteMode())
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfigValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "gatekeeper.db", cfg.SQLite.Path)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 6, cfg.PasswordStrength.MinLength)
	assert.Equal(t, 72, cfg.PasswordStrength.MaxLength)
	assert.Equal(t, SessionStoreDatabase, cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 12*time.Hour, cfg.Session.SlidingInterval)
	assert.Equal(t, defaultPurgeInterval, cfg.Session.PurgeInterval)
	assert.Equal(t, "session_id", cfg.Session.Cookie.Name)
	assert.Equal(t, "/", cfg.Session.Cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cfg.Session.Cookie.SameSiteMode())
}

func TestConfigValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "mysql" },
			wantErr: "unsupported storage.driver",
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = DriverPostgres },
			wantErr: "postgres.dsn is required",
		},
		{
			name:    "unknown session store",
			mutate:  func(cfg *Config) { cfg.Session = &SessionConfig{Store: "memcached"} },
			wantErr: "unsupported session.store",
		},
		{
			name:    "redis without url",
			mutate:  func(cfg *Config) { cfg.Session = &SessionConfig{Store: SessionStoreRedis} },
			wantErr: "redis.url is required",
		},
		{
			name: "min length above max",
			mutate: func(cfg *Config) {
				cfg.PasswordStrength = &PasswordStrengthConfig{MinLength: 40, MaxLength: 20}
			},
			wantErr: "exceeds maxLength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidate_NegativePurgeIntervalDisablesSweeper(t *testing.T) {
	cfg := &Config{Session: &SessionConfig{PurgeInterval: -1}}
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.Validate())
	assert.Negative(t, cfg.Session.PurgeInterval)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICA_0_DSN", "postgres://r0")
	t.Setenv("POSTGRES_REPLICA_1_DSN", "postgres://r1")
	t.Setenv("POSTGRES_REPLICA_3_DSN", "postgres://r3")

	assert.Equal(t, []string{"postgres://r0", "postgres://r1"}, buildReplicasFromEnv())
}
