package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:   AppConfig{Env: "production"},
		DB:    DBConfig{Driver: StoreDriverPostgres},
		JWT:   JWTConfig{Secret: "s3cr3t", Expiration: 60},
		HTTP:  HTTPConfig{LoginRatePerMinute: 10},
		Media: MediaConfig{Driver: MediaDriverLocal},
	}
}

func TestValidate_ConfigValida(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_SecretVacioEnProduccion(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.App.Env = "development"
	assert.NoError(t, cfg.Validate(), "en development se tolera un secret vacío")
}

func TestValidate_DriversDesconocidos(t *testing.T) {
	cfg := validConfig()
	cfg.DB.Driver = "mysql"
	cfg.Media.Driver = "ftp"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
	assert.Contains(t, err.Error(), "MEDIA_DRIVER")
}

func TestValidate_S3SinBucket(t *testing.T) {
	cfg := validConfig()
	cfg.Media.Driver = MediaDriverS3
	assert.Error(t, cfg.Validate())
	cfg.Media.S3Bucket = "linkbi-photos"
	assert.NoError(t, cfg.Validate())
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "linkbi", Password: "p@ss:word", DBName: "linkbi", SSLMode: "disable"}
	assert.Equal(t, "postgres://linkbi:p%40ss%3Aword@db:5432/linkbi?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@h/db"
	assert.Equal(t, "postgres://u:p@h/db", c.ConnectionString())
}

func TestEnsureDevSecret(t *testing.T) {
	cfg := validConfig()
	cfg.App.Env = "development"
	cfg.JWT.Secret = ""
	require.NoError(t, cfg.ensureDevSecret())
	assert.Len(t, cfg.JWT.Secret, 64)
	assert.True(t, cfg.JWT.Generated)

	other := validConfig()
	other.App.Env = "development"
	other.JWT.Secret = ""
	require.NoError(t, other.ensureDevSecret())
	assert.NotEqual(t, cfg.JWT.Secret, other.JWT.Secret)

	fixed := validConfig()
	require.NoError(t, fixed.ensureDevSecret())
	assert.Equal(t, "s3cr3t", fixed.JWT.Secret, "un secret configurado no se reemplaza")
	assert.False(t, fixed.JWT.Generated)
}

func TestLoad_DevelopmentSinSecretPermiteLogin(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_DRIVER", "memory")
	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.True(t, cfg.JWT.Generated)
}
