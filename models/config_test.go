package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// unreachableDB opens a handle that connects lazily and fails on first use,
// standing in for a database that drops out mid-flight.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		postgres.Open("host=127.0.0.1 port=1 user=app dbname=app sslmode=disable connect_timeout=1"),
		&gorm.Config{DisableAutomaticPing: true, Logger: logger.Discard},
	)
	require.NoError(t, err)
	return db
}

func TestGetPlatformConfigPropagatesQueryErrors(t *testing.T) {
	config, err := GetPlatformConfig(unreachableDB(t))

	require.Error(t, err)
	assert.NotErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, config, "a failed load must not fall through to creating defaults")
}
