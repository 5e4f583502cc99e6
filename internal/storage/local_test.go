package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalFileStore("http://localhost:8080", t.TempDir())
	require.NoError(t, err)

	key := NewObjectKey("report.pdf")
	assert.True(t, strings.HasSuffix(key, ".pdf"))

	t.Run("SaveOpenRoundTrip", func(t *testing.T) {
		require.NoError(t, store.Save(key, strings.NewReader("analysis body")))

		exists, size, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(len("analysis body")), size)

		f, err := store.Open(key)
		require.NoError(t, err)
		defer f.Close()
		body, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "analysis body", string(body))
	})

	t.Run("DeleteURLReleasesObject", func(t *testing.T) {
		url, err := store.DownloadURL(ctx, key, 0)
		require.NoError(t, err)
		assert.Contains(t, url, "key="+key)

		require.NoError(t, store.DeleteURL(ctx, url))

		exists, _, err := store.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("DeleteAbsentIsNoop", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed.pdf"))
	})

	t.Run("URLWithoutKeyRejected", func(t *testing.T) {
		assert.Error(t, store.DeleteURL(ctx, "http://localhost:8080/api/v1/files/download"))
	})
}
