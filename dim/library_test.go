package dim

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/library", r.URL.Path)
		w.Write([]byte(`{"data": [{"id": 1, "name": "Movies", "media_type": "movie"}]}`))
	})

	libraries, err := client.Libraries(context.Background())
	require.NoError(t, err)
	require.Len(t, libraries, 1)
	assert.Equal(t, "Movies", libraries[0].Name)
	assert.Equal(t, MediaTypeMovie, libraries[0].MediaType)
}

func TestLibrariesServerError(t *testing.T) {
	fail := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}

	t.Run("compatible mode returns empty result", func(t *testing.T) {
		client := newTestClient(t, fail)
		libraries, err := client.Libraries(context.Background())
		require.NoError(t, err)
		assert.Empty(t, libraries)
	})

	t.Run("strict mode surfaces the status", func(t *testing.T) {
		client := newTestClient(t, fail, WithStrictErrors())
		libraries, err := client.Libraries(context.Background())
		assert.Empty(t, libraries)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.False(t, apiErr.IsNotFound())
	})
}

func TestLibraryItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/library/3/media", r.URL.Path)
		w.Write([]byte(`[{"id": 10, "name": "Heat", "year": 1995}]`))
	})

	items, err := client.LibraryItems(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1995, items[0].Year)
}

func TestUnmatchedItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/library/3/unmatched", r.URL.Path)
		w.Write([]byte(`{"/mnt/movies": [{"id": 5, "target_file": "/mnt/movies/unknown.mkv", "raw_name": "unknown"}]}`))
	})

	unmatched, err := client.UnmatchedItems(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, unmatched["/mnt/movies"], 1)
	assert.Equal(t, "unknown", unmatched["/mnt/movies"][0].RawName)
}

func TestAddLibrary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/library", r.URL.Path)

		var body addLibraryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Movies", body.Name)
		assert.Equal(t, MediaTypeMovie, body.MediaType)
		assert.Equal(t, []string{"/mnt/movies"}, body.Locations)

		w.WriteHeader(http.StatusCreated)
	})

	ok, err := client.AddLibrary(context.Background(), "Movies", MediaTypeMovie, []string{"/mnt/movies"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddLibraryInvalidMediaType(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	ok, err := client.AddLibrary(context.Background(), "Books", "book", []string{"/mnt/books"})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidMediaType)
	assert.Zero(t, calls.Load(), "validation failure must not issue a request")
}

func TestDeleteLibrary(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "success", status: http.StatusNoContent, want: true},
		{name: "server error", status: http.StatusInternalServerError, want: false},
		{name: "not found", status: http.StatusNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/v1/library/7", r.URL.Path)
				w.WriteHeader(tt.status)
			})

			ok, err := client.DeleteLibrary(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
