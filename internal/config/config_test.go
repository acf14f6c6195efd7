package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "roam", cfg.Database.Namespace)
	assert.Equal(t, 15, cfg.JWT.ExpirationMins)
	assert.Equal(t, 5*time.Minute, cfg.Jobs.ReconcileInterval)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAMESPACE", "staging")
	t.Setenv("FOLLOW_RECONCILE_INTERVAL", "30s")
	t.Setenv("FOLLOW_RECONCILE_LIVE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "staging", cfg.Database.Namespace)
	assert.Equal(t, 30*time.Second, cfg.Jobs.ReconcileInterval)
	assert.False(t, cfg.Jobs.LiveEvents)
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Server.Port = ""
	cfg.Server.Env = "staging"
	cfg.Database.Host = ""
	cfg.JWT.ExpirationMins = 0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "SERVER_ENV")
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_MINS")
}

func TestValidate_ProductionRequiresPublicKey(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Server.Env = "production"
	cfg.JWT.PublicKeyPath = ""

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_PUBLIC_KEY_PATH")
}
