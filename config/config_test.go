package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidConfig() *Config {
	cfg := &Config{
		App: AppConfig{
			PublicBaseURL: "https://pymerp.cl",
			AdminEmail:    "ops@pymerp.cl",
		},
		Firebase: &FirebaseConfig{ProjectID: "pymerp-cl"},
	}
	applyDefaults(cfg)

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{App: AppConfig{PublicBaseURL: "https://pymerp.cl/"}}
	applyDefaults(cfg)

	assert.Equal(t, StorageDriverFirestore, cfg.Storage.Driver)
	assert.Equal(t, AuthProviderFirebase, cfg.Auth.Provider)
	assert.Equal(t, defaultPasswordLength, cfg.Provisioning.PasswordLength)
	assert.Equal(t, float64(defaultMaxRadiusKm), cfg.Directory.MaxRadiusKm)
	assert.Equal(t, "https://pymerp.cl/login", cfg.App.LoginURL)
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, newValidConfig().Validate())
}

func TestValidate_ReportsAllMissing(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.publicBaseUrl")
	assert.Contains(t, err.Error(), "app.adminEmail")
	assert.Contains(t, err.Error(), "firebase.projectId")
}

func TestValidate_JWTProviderNeedsSecret(t *testing.T) {
	cfg := newValidConfig()
	cfg.Auth.Provider = AuthProviderJWT

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwtSecret")

	cfg.Auth.JWTSecret = "local-secret"
	require.NoError(t, cfg.Validate())
}

func TestValidate_PostgresDriver(t *testing.T) {
	cfg := newValidConfig()
	cfg.Storage.Driver = StorageDriverPostgres

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := newValidConfig()
	cfg.Storage.Driver = "mongo"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
