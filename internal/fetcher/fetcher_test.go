package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dashboard-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFavicon_PrefersTouchIcon(t *testing.T) {
	srv := serve(t, `<html><head>
<link rel="stylesheet" href="/app.css">
<link rel="icon" href="/static/icon-32.png">
<link rel="apple-touch-icon" href="/static/touch.png">
</head></html>`)

	got, err := NewFetcher(time.Second, "dashboard-test").Favicon(context.Background(), srv.URL+"/login")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/static/touch.png", got)
}

func TestFavicon_ShortcutIconAbsolute(t *testing.T) {
	srv := serve(t, `<head><link rel="shortcut icon" href="https://cdn.example.com/fav.ico"></head>`)

	got, err := NewFetcher(time.Second, "dashboard-test").Favicon(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/fav.ico", got)
}

func TestFavicon_FallsBackToFaviconICO(t *testing.T) {
	srv := serve(t, `<html><head><title>ERP</title></head></html>`)

	got, err := NewFetcher(time.Second, "dashboard-test").Favicon(context.Background(), srv.URL+"/web")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/favicon.ico", got)
}

func TestFavicon_Errors(t *testing.T) {
	f := NewFetcher(time.Second, "dashboard-test")

	_, err := f.Favicon(context.Background(), "mailto:team@example.com")
	assert.ErrorContains(t, err, "invalid url")

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err = f.Favicon(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "status 404")
}
