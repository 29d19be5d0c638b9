package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitnote/local-app/pkg/log"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	s := NewMemoryStore(log.NewNop())
	ctx := context.Background()

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	raw, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v1"), raw)

	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	raw, _, _ = s.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), raw)

	require.NoError(t, s.Remove(ctx, "k"))
	_, found, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	// Removing an absent key is a no-op.
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore(log.NewNop())
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'x'

	raw, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), raw)

	// Mutating a returned value must not affect the stored one.
	raw[0] = 'y'
	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestValidateDriver(t *testing.T) {
	driver, err := validateDriver("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, driver)

	driver, err = validateDriver("memory")
	require.NoError(t, err)
	assert.Equal(t, Memory, driver)

	_, err = validateDriver("postgres")
	assert.Error(t, err)
}
