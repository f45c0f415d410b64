package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doMultipart posts a multipart work form with optional file content
func doMultipart(t *testing.T, r *gin.Engine, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/work", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadWorkValidation(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	w := doMultipart(t, r, map[string]string{"title": "Showcase"}, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")

	w = doMultipart(t, r, map[string]string{
		"title":       "Showcase",
		"description": "Portfolio piece",
		"adminId":     "not-a-number",
	}, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "adminId")
}

func TestUploadWorkWithFile(t *testing.T) {
	r, _, cfg := newTestRouter(t, unreachableRatesURL)

	w := doMultipart(t, r, map[string]string{
		"title":       "Showcase",
		"description": "Portfolio piece",
		"adminId":     "1",
	}, "my report draft.pdf", []byte("pdf bytes"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The listing's file_path must match the stored file exactly
	list := doJSON(t, r, http.MethodGet, "/api/work", nil)
	require.Equal(t, http.StatusOK, list.Code)
	work := decodeBody(t, list)["work"].([]any)
	require.Len(t, work, 1)
	filePath, _ := work[0].(map[string]any)["file_path"].(string)
	require.NotEmpty(t, filePath)
	assert.True(t, strings.HasSuffix(filePath, "-my_report_draft.pdf"),
		"spaces replaced by underscores, got %q", filePath)
	assert.False(t, strings.Contains(filePath, string(os.PathSeparator)),
		"only the generated filename is stored, not the full path")

	saved, err := os.ReadFile(filepath.Join(cfg.UploadDir, filePath))
	require.NoError(t, err, "file stored under the upload directory")
	assert.Equal(t, []byte("pdf bytes"), saved)

	// Stored files are served verbatim under /uploads/
	req := httptest.NewRequest(http.MethodGet, "/uploads/"+filePath, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "pdf bytes", resp.Body.String())
}

func TestUploadWorkWithoutFile(t *testing.T) {
	r, _, _ := newTestRouter(t, unreachableRatesURL)

	w := doMultipart(t, r, map[string]string{
		"title":       "Text only",
		"description": "No attachment",
		"adminId":     "2",
	}, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	list := doJSON(t, r, http.MethodGet, "/api/work", nil)
	work := decodeBody(t, list)["work"].([]any)
	require.Len(t, work, 1)
	assert.Nil(t, work[0].(map[string]any)["file_path"], "file_path is null without a file")

	// Repeated reads with no intervening writes return identical ordered results
	again := doJSON(t, r, http.MethodGet, "/api/work", nil)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, list.Body.String(), again.Body.String())
}
