package session_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatewm/slate/internal/geometry"
	"github.com/slatewm/slate/internal/session"
)

func openStore(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.OpenInMemory(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	in := session.Geometry{Frame: geometry.NewRect(20, 10, 200, 100)}
	require.NoError(t, s.Save(ctx, "org.example.term", in))

	out, err := s.Load(ctx, "org.example.term")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStoreSaveOverwrites(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "org.example.term", session.Geometry{Frame: geometry.NewRect(0, 0, 100, 100)}))
	require.NoError(t, s.Save(ctx, "org.example.term", session.Geometry{
		Frame:     geometry.NewRect(5, 5, 300, 200),
		Maximized: true,
	}))

	out, err := s.Load(ctx, "org.example.term")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewRect(5, 5, 300, 200), out.Frame)
	assert.True(t, out.Maximized)
}

func TestStoreLoadUnknownAppID(t *testing.T) {
	s := openStore(t)

	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestStoreForget(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "org.example.term", session.Geometry{Frame: geometry.NewRect(1, 2, 3, 4)}))
	require.NoError(t, s.Forget(ctx, "org.example.term"))

	_, err := s.Load(ctx, "org.example.term")
	assert.ErrorIs(t, err, session.ErrNotFound)

	assert.NoError(t, s.Forget(ctx, "org.example.term"), "forgetting twice is fine")
}

func TestStoreRejectsEmptyAppID(t *testing.T) {
	s := openStore(t)

	err := s.Save(context.Background(), "", session.Geometry{})
	assert.Error(t, err)
}
