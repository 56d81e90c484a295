package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/aanand-mishra/users-api/internal/config"
	"github.com/aanand-mishra/users-api/internal/storage/memory"
	"github.com/aanand-mishra/users-api/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStorage(t *testing.T) {
	s, err := openStorage(config.Storage{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Memory{}, s)
	assert.NoError(t, s.Close())

	s, err = openStorage(config.Storage{Driver: config.DriverSQLite})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.SQLite{}, s)
	assert.NoError(t, s.Close())

	_, err = openStorage(config.Storage{Driver: "postgres"})
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	ctx := context.Background()

	assert.False(t, setupLogger("prod").Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("staging").Enabled(ctx, slog.LevelDebug))
	assert.True(t, setupLogger("dev").Enabled(ctx, slog.LevelDebug))
}
