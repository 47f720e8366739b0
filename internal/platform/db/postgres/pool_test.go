package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "dashboard",
		Password:        "p@ss:word",
		Name:            "learning",
		SSLMode:         "disable",
		MaxOpenConns:    12,
		MaxIdleConns:    4,
		ConnMaxLifetime: 45 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	poolCfg, err := BuildPoolConfig(dbCfg)
	require.NoError(t, err)

	assert.EqualValues(t, 12, poolCfg.MaxConns)
	assert.EqualValues(t, 4, poolCfg.MinConns)
	assert.Equal(t, 45*time.Minute, poolCfg.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, poolCfg.MaxConnIdleTime)
	assert.Equal(t, "learning", poolCfg.ConnConfig.Database)
	assert.Equal(t, "p@ss:word", poolCfg.ConnConfig.Password, "password was not decoded from DSN")
	assert.Equal(t, ApplicationName, poolCfg.ConnConfig.RuntimeParams["application_name"])
}

func TestBuildPoolConfig_MinConnsCappedByMax(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.DatabaseConfig{
		Host:         "localhost",
		Port:         5432,
		User:         "dashboard",
		Name:         "learning",
		SSLMode:      "disable",
		MaxOpenConns: 2,
		MaxIdleConns: 10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, poolCfg.MinConns, "MinConns must be capped by MaxConns")
}
