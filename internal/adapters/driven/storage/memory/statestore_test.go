package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/slidedeck/internal/core/domain"
)

func TestStateStore_GetMissing(t *testing.T) {
	store := NewStateStore()

	_, err := store.Get(context.Background(), "slides")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore()

	require.NoError(t, store.Put(ctx, "slides", []byte(`[]`)))

	got, err := store.Get(ctx, "slides")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestStateStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore()

	require.NoError(t, store.Put(ctx, "slides", []byte("one")))
	require.NoError(t, store.Put(ctx, "slides", []byte("two")))

	got, err := store.Get(ctx, "slides")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))
}

func TestStateStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore()

	value := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestStateStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore()

	require.NoError(t, store.Put(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "missing"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStateStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Put(ctx, "k", []byte{byte(i)})
			_, _ = store.Get(ctx, "k")
		}()
	}
	wg.Wait()

	_, err := store.Get(ctx, "k")
	assert.NoError(t, err)
}
