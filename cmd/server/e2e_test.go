package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wadjakorntonsri/ito/internal/app"
	"github.com/wadjakorntonsri/ito/pkg/config"
	"github.com/wadjakorntonsri/ito/pkg/logging"
)

func TestIntegration(t *testing.T) {
	// 1. Setup DB in a throwaway directory
	cfg := &config.Config{
		DatabaseURL:  filepath.Join(t.TempDir(), "data", "ito.db"),
		MaxOpenConns: 4,
	}
	a, err := app.New(cfg, logging.Discard())
	require.NoError(t, err)
	defer a.Close()

	// 2. Setup Router
	mux, err := a.Handler()
	require.NoError(t, err)

	server := httptest.NewServer(mux)
	defer server.Close()

	client := server.Client()
	// Don't follow redirects automatically to check status codes
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	postLink := func(alias, target string) *http.Response {
		resp, err := client.PostForm(server.URL+"/links", url.Values{"alias": {alias}, "target_url": {target}})
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	// TEST 1: Create Link
	resp := postLink("foo", "https://example.com")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// TEST 2: Redirect
	resp, err = client.Get(server.URL + "/foo")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "https://example.com", resp.Header.Get("Location"))

	// TEST 3: List Links
	resp, err = client.Get(server.URL + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, strings.Count(string(body), "data-link-id="))
	assert.Contains(t, string(body), `href="/foo"`)

	// TEST 4: Duplicate alias and malformed target are rejected
	resp = postLink("foo", "https://example.org")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp = postLink("bar", "not a url")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	links, err := a.Repo.List(t.Context())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com", links[0].TargetURL)

	// TEST 5: Non-ASCII aliases resolve however the client escapes them
	assert.Equal(t, http.StatusSeeOther, postLink("café", "https://example.com/cafe").StatusCode)
	assert.Equal(t, http.StatusSeeOther, postLink("it's café", "https://example.com/its").StatusCode)
	for path, want := range map[string]string{
		"/caf%C3%A9":          "https://example.com/cafe",
		"/caf%c3%a9":          "https://example.com/cafe",
		"/it%27s%20caf%C3%A9": "https://example.com/its",
		"/it's%20caf%C3%A9":   "https://example.com/its",
	} {
		resp, err = client.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, want, resp.Header.Get("Location"), path)
	}
	for _, alias := range []string{"café", "it's café"} {
		link, err := a.Repo.FindByAlias(t.Context(), alias)
		require.NoError(t, err)
		require.NoError(t, a.Links.Delete(t.Context(), link.ID))
	}

	// TEST 6: Unknown alias
	resp, err = client.Get(server.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// TEST 7: Favicon
	resp, err = client.Get(server.URL + "/favicon.ico")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// TEST 8: Delete, twice
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodDelete, server.URL+"/links/"+strconv.FormatInt(links[0].ID, 10), nil)
		resp, err = client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	}

	resp, err = client.Get(server.URL + "/foo")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	links, err = a.Repo.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, links)
}
