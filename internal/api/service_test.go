package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceValidation(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	w := doJSON(t, r, http.MethodPost, "/api/services", map[string]any{
		"service": "Hosting",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestServiceListingsRichAndLegacy(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	registerUser(t, r, "Admin", "admin@example.com", "adminpass", "admin")

	for _, svc := range []string{"Hosting", "Support"} {
		w := doJSON(t, r, http.MethodPost, "/api/services", map[string]any{
			"service": svc,
			"level":   "basic",
			"adminId": 1,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	// Rich projection joins the owning admin's name
	rich := doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, rich.Code)
	richBody := decodeBody(t, rich)
	services := richBody["services"].([]any)
	require.Len(t, services, 2)
	first := services[0].(map[string]any)
	assert.Equal(t, "Support", first["service"], "newest first")
	assert.Equal(t, "Admin", first["admin_name"])

	// Legacy projection carries no join
	legacy := doJSON(t, r, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, legacy.Code)
	legacyBody := decodeBody(t, legacy)
	legacyServices := legacyBody["services"].([]any)
	require.Len(t, legacyServices, 2)
	legacyFirst := legacyServices[0].(map[string]any)
	assert.Equal(t, "Support", legacyFirst["service"], "newest first")
	assert.NotContains(t, legacyFirst, "admin_name")
}

func TestServiceListingIdempotent(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	w := doJSON(t, r, http.MethodPost, "/api/services", map[string]any{
		"service": "Hosting",
		"level":   "premium",
		"adminId": 7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Repeated reads with no intervening writes return identical ordered results
	first := doJSON(t, r, http.MethodGet, "/api/services", nil)
	second := doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
