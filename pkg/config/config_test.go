package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cafetal-api", cfg.App.Name)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, "120-M", cfg.RateLimit.Movements)
	assert.Equal(t, "@every 5m", cfg.Lots.RefreshSpec)
	assert.Equal(t, "20", cfg.Inventory.AlertCritical)
	assert.Equal(t, "50", cfg.Inventory.AlertLow)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_TZ", "America/Bogota")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_IDLE_TIMEOUT", "2m")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 2*time.Minute, cfg.HTTP.IdleTimeout)
	assert.True(t, cfg.JWT.Enabled())

	loc, err := cfg.App.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", loc.String())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{User: "app", Password: "p@ss", Host: "db", Port: 5432, DBName: "cafetal", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/cafetal?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
