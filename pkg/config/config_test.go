package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	appConfig, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory-service", appConfig.ServiceName)
	assert.Equal(t, "localhost", appConfig.DB.Host)
	assert.Equal(t, "5432", appConfig.DB.Port)
	assert.Equal(t, "8080", appConfig.Server.Port)
	assert.Equal(t, "development", appConfig.Server.Env)
	assert.Equal(t, "info", appConfig.Log.Level)
	assert.Equal(t, "inventory_service", appConfig.Metrics.Prefix)
	assert.Equal(t, time.Hour, appConfig.DB.ConnMaxLifetime)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")

	appConfig, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", appConfig.DB.Host)
	assert.Equal(t, "inventory", appConfig.DB.DBName)
	assert.Equal(t, 25, appConfig.DB.MaxOpenConns)
	assert.Equal(t, "9090", appConfig.Server.Port)
	assert.Equal(t, "production", appConfig.Server.Env)
}

func TestGetDSN(t *testing.T) {
	dbConfig := DBConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "inventory",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal port=5432 user=app password=secret dbname=inventory sslmode=disable",
		dbConfig.GetDSN())
}
