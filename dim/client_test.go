package dim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up a mock server that answers the login handshake and
// delegates everything else to handler.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/auth/login" {
			json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := New(server.URL, "user", "pass", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name     string
		baseURL  string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "missing URL",
			username: "user",
			password: "pass",
			wantErr:  ErrMissingURL,
		},
		{
			name:     "missing username",
			baseURL:  "http://localhost:8000",
			password: "pass",
			wantErr:  ErrMissingCredentials,
		},
		{
			name:     "missing password",
			baseURL:  "http://localhost:8000",
			username: "user",
			wantErr:  ErrMissingCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.baseURL, tt.username, tt.password, logger)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewAuthenticates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user", body["username"])
		assert.Equal(t, "pass", body["password"])

		json.NewEncoder(w).Encode(map[string]string{"token": "abc"})
	}))
	defer server.Close()

	// Trailing slash must be stripped exactly once.
	client, err := New(server.URL+"/", "user", "pass", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/api/v1", client.baseURL)
	assert.Equal(t, "abc", client.token)
}

func TestNewAuthFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "rejected credentials",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "empty token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"token": ""})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := New(server.URL, "user", "pass", zerolog.Nop())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAuthFailed)
		})
	}
}

func TestTokenAttachedToEveryRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/auth/whoami", r.URL.Path)
		json.NewEncoder(w).Encode(UserInfo{Username: "user"})
	})

	user, err := client.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user", user.Username)
}

func TestOptions(t *testing.T) {
	noop := func(w http.ResponseWriter, r *http.Request) {}

	t.Run("with timeout", func(t *testing.T) {
		client := newTestClient(t, noop, WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client := newTestClient(t, noop, WithHTTPClient(custom))
		assert.Equal(t, custom, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "dimctl-test", r.Header.Get("User-Agent"))
			w.Write([]byte("{}"))
		}, WithUserAgent("dimctl-test"))

		_, err := client.WhoAmI(context.Background())
		require.NoError(t, err)
	})
}

func TestJSONVariants(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": 1}})
	})

	ctx := context.Background()

	body, err := client.postJSON(ctx, "media/1/progress", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1}`, string(unwrapData(body)))

	body, err = client.patchJSON(ctx, "media/1", nil, map[string]any{"name": "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	body, err = client.deleteJSON(ctx, "media/1", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestJSONVariantsFailureCollapsesToEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ctx := context.Background()

	body, err := client.getJSON(ctx, "library", nil)
	require.NoError(t, err)
	assert.Empty(t, body)

	body, err = client.postJSON(ctx, "library", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestSettingsAndDashboard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/user/settings":
			json.NewEncoder(w).Encode(UserSettings{Theme: "Dark", ShowCardNames: true})
		case "/api/v1/dashboard":
			json.NewEncoder(w).Encode(Dashboard{
				"FRESHLY ADDED": {{ID: 4, Name: "Blade Runner"}},
			})
		case "/api/v1/dashboard/banner":
			json.NewEncoder(w).Encode([]BannerCard{{ID: 9, Title: "Dune"}})
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()

	settings, err := client.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dark", settings.Theme)

	dashboard, err := client.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, dashboard["FRESHLY ADDED"], 1)
	assert.Equal(t, "Blade Runner", dashboard["FRESHLY ADDED"][0].Name)

	banner, err := client.Banner(ctx)
	require.NoError(t, err)
	require.Len(t, banner, 1)
	assert.Equal(t, "Dune", banner[0].Title)
}
