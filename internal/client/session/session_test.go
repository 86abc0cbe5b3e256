package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WayleX/Beerter/internal/client/repositories/metadata"
	"github.com/WayleX/Beerter/internal/client/storage"
	"github.com/WayleX/Beerter/internal/common"
)

// ---- fake backend ----

type fakeBackend struct {
	token     string
	loadErr   error
	saveErr   error
	deleteErr error

	saves   int
	deletes int
}

func (f *fakeBackend) Load(context.Context) (string, error) { return f.token, f.loadErr }
func (f *fakeBackend) Save(_ context.Context, token string) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	return nil
}
func (f *fakeBackend) Delete(context.Context) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.token = ""
	return nil
}

// ---- tests ----

func TestGet_EmptyStore(t *testing.T) {
	s := NewEphemeral()
	tok, ok := s.Get()
	assert.False(t, ok)
	assert.Empty(t, tok)
	assert.False(t, s.Authenticated())
}

func TestSetThenGet_ReturnsExactToken(t *testing.T) {
	ctx := context.Background()
	for _, tok := range []string{"a", "abc", "eyJhbGciOiJIUzI1NiJ9.e30.sig", "  spaced  ", "ünïcødé"} {
		s := NewEphemeral()
		require.NoError(t, s.Set(ctx, tok))
		got, ok := s.Get()
		require.True(t, ok)
		require.Equal(t, tok, got)
	}
}

func TestSet_OverwritesPrevious(t *testing.T) {
	ctx := context.Background()
	s := NewEphemeral()
	require.NoError(t, s.Set(ctx, "old"))
	require.NoError(t, s.Set(ctx, "new"))

	got, _ := s.Get()
	assert.Equal(t, "new", got)
}

func TestSet_RejectsEmptyToken(t *testing.T) {
	s := NewEphemeral()
	require.NoError(t, s.Set(context.Background(), "keep"))

	err := s.Set(context.Background(), "")
	require.ErrorIs(t, err, common.ErrEmptyToken)

	got, _ := s.Get()
	assert.Equal(t, "keep", got)
}

func TestClear_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewEphemeral()

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	_, ok := s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "t"))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	_, ok = s.Get()
	assert.False(t, ok)
}

func TestOpen_LoadsPersistedToken(t *testing.T) {
	s, err := Open(context.Background(), &fakeBackend{token: "persisted"})
	require.NoError(t, err)
	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestOpen_LoadError(t *testing.T) {
	_, err := Open(context.Background(), &fakeBackend{loadErr: errors.New("disk gone")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load session")
}

func TestSet_BackendFailureKeepsPreviousToken(t *testing.T) {
	b := &fakeBackend{token: "old"}
	s, err := Open(context.Background(), b)
	require.NoError(t, err)

	b.saveErr = errors.New("readonly")
	require.Error(t, s.Set(context.Background(), "new"))

	got, _ := s.Get()
	assert.Equal(t, "old", got)
}

func TestClear_BackendFailureStillSignsOut(t *testing.T) {
	b := &fakeBackend{token: "tok"}
	s, err := Open(context.Background(), b)
	require.NoError(t, err)

	b.deleteErr = errors.New("readonly")
	require.Error(t, s.Clear(context.Background()))

	_, ok := s.Get()
	assert.False(t, ok, "memory must be cleared even if the backend failed")
}

func TestConcurrentSetGetClear_NoRace(t *testing.T) {
	ctx := context.Background()
	s := NewEphemeral()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			_ = s.Set(ctx, fmt.Sprintf("tok-%d", i))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.Get()
		}()
		go func() {
			defer wg.Done()
			_ = s.Clear(ctx)
		}()
	}
	wg.Wait()

	require.NoError(t, s.Clear(ctx))
	_, ok := s.Get()
	assert.False(t, ok)
}

func TestMetadataBackend_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "beerter.db")

	db, err := storage.InitDatabase(ctx, path)
	require.NoError(t, err)

	s, err := Open(ctx, NewMetadataBackend(metadata.NewSQLiteRepository(db)))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "abc"))
	require.NoError(t, db.Close())

	db, err = storage.InitDatabase(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s2, err := Open(ctx, NewMetadataBackend(metadata.NewSQLiteRepository(db)))
	require.NoError(t, err)
	got, ok := s2.Get()
	require.True(t, ok)
	assert.Equal(t, "abc", got)

	require.NoError(t, s2.Clear(ctx))
	require.NoError(t, s2.Clear(ctx))

	s3, err := Open(ctx, NewMetadataBackend(metadata.NewSQLiteRepository(db)))
	require.NoError(t, err)
	_, ok = s3.Get()
	assert.False(t, ok)
}
