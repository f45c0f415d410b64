package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"service_portal/internal/api"
	"service_portal/internal/config"
	"service_portal/internal/currency"
	"service_portal/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// unreachableRatesURL points at a port nothing listens on; the rate client
// must fail open against it.
const unreachableRatesURL = "http://127.0.0.1:1"

// newTestDB opens an in-memory sqlite store with the full schema applied.
// TranslateError keeps duplicate-key detection identical to the MySQL setup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open test database")
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(conn), "migrate test schema")
	return conn
}

// newTestRouter builds a router around a fresh in-memory store, a temp upload
// directory and a rate client pointed at ratesURL.
func newTestRouter(t *testing.T, ratesURL string) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	conn := newTestDB(t)
	cfg := &config.Config{
		UploadDir:    t.TempDir(),
		PublicDir:    t.TempDir(),
		RatesAPIURL:  ratesURL,
		BaseCurrency: "USD",
	}
	rates := currency.NewClient(cfg.RatesAPIURL, cfg.BaseCurrency)
	return api.NewRouter(conn, rates, cfg), conn, cfg
}

// doJSON sends a JSON request to the router and returns the recorder
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a generic map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "decode response body: %s", w.Body.String())
	return out
}

// registerUser registers a user through the HTTP surface and asserts success
func registerUser(t *testing.T, r *gin.Engine, name, email, password, accountType string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", map[string]any{
		"name":        name,
		"email":       email,
		"password":    password,
		"accountType": accountType,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %s", email, w.Body.String())
}
