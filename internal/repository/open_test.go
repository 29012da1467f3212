package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duesmanager/internal/config"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, &config.Config{StoreBackend: config.BackendMemory})
	require.NoError(t, err)
	assert.False(t, store.Atomic())

	store, err = Open(ctx, &config.Config{StoreBackend: config.BackendSQL, DBDriver: "sqlite", DBDSN: ":memory:"})
	require.NoError(t, err)
	assert.True(t, store.Atomic())

	_, err = Open(ctx, &config.Config{StoreBackend: config.BackendSQL, DBDriver: "oracle"})
	assert.Error(t, err)

	_, err = Open(ctx, &config.Config{StoreBackend: config.BackendSheets})
	assert.Error(t, err)

	_, err = Open(ctx, &config.Config{StoreBackend: "csv"})
	assert.Error(t, err)
}
