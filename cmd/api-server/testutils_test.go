package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/protomem/clinic-api/internal/database/databasetest"
	"github.com/protomem/clinic-api/internal/model"
	"github.com/protomem/clinic-api/internal/session"
	"github.com/stretchr/testify/require"
)

func newTestConfig() config {
	var cfg config
	cfg.session.ttl = time.Hour
	cfg.session.cookieName = "sid"
	cfg.cors.allowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func newTestApplication(t *testing.T, cfg config, store session.Store) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApplication(cfg, logger, databasetest.New(t), store)
}

type testServer struct {
	*httptest.Server
	store session.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithStore(t, session.NewMemoryStore())
}

func newTestServerWithStore(t *testing.T, store session.Store) *testServer {
	t.Helper()

	app := newTestApplication(t, newTestConfig(), store)
	ts := httptest.NewServer(app.routes())
	t.Cleanup(ts.Close)

	return &testServer{Server: ts, store: store}
}

// client returns an HTTP client with its own cookie jar, i.e. a fresh
// browser.
func (ts *testServer) client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{Jar: jar}
}

// adminClient returns a client carrying an admin session that was put into
// the store directly.
func (ts *testServer) adminClient(t *testing.T) *http.Client {
	t.Helper()

	now := time.Now().UTC()
	token := "admin-" + t.Name()
	require.NoError(t, ts.store.Put(context.Background(), model.Session{
		Token:       token,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
		PatientName: "admin",
		IsAdmin:     true,
	}))

	client := ts.client(t)
	client.Jar.SetCookies(ts.mustURL(t), []*http.Cookie{{Name: "sid", Value: token, Path: "/"}})

	return client
}

func (ts *testServer) do(t *testing.T, client *http.Client, method, path, body string) (int, string, http.Header) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := client.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res.StatusCode, strings.TrimSpace(string(raw)), res.Header
}

func (ts *testServer) sessionCookie(t *testing.T, client *http.Client) string {
	t.Helper()

	for _, c := range client.Jar.Cookies(ts.mustURL(t)) {
		if c.Name == "sid" {
			return c.Value
		}
	}
	return ""
}

func (ts *testServer) register(t *testing.T, client *http.Client, firstName, email, password string) {
	t.Helper()

	status, _, _ := ts.do(t, client, http.MethodPost, "/auth/register",
		`{"firstName":"`+firstName+`","email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, status)
}

func (ts *testServer) login(t *testing.T, client *http.Client, email, password string) {
	t.Helper()

	status, _, _ := ts.do(t, client, http.MethodPost, "/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, status)
}

func (ts *testServer) mustURL(t *testing.T) *url.URL {
	t.Helper()

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	return u
}
