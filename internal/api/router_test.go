package api_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	w := doJSON(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestStaticAssetsServedFromConfiguredDir(t *testing.T) {
	r, _, cfg := newTestRouter(t, unreachableRatesURL)

	// The asset root comes from config, not the process working directory
	page := []byte("<html><body>landing</body></html>")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.PublicDir, "index.html"), page, 0o644))

	w := doJSON(t, r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(page), w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	w := doJSON(t, r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
