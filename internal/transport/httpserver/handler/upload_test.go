package handler_test

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadValidImage(t *testing.T) {
	env := newTestEnv(t)

	content := []byte("\x89PNG\r\n\x1a\nfake image bytes")
	status, raw := env.upload("file", "photo.png", "image/png", content)
	require.Equal(t, http.StatusCreated, status, "body: %s", raw)

	var uploaded struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	decode(t, raw, &uploaded)
	assert.True(t, strings.HasPrefix(uploaded.URL, "/uploads/"), "url %q", uploaded.URL)
	assert.True(t, strings.HasSuffix(uploaded.Filename, ".png"))

	written, err := os.ReadFile(filepath.Join(env.uploadDir, uploaded.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, written)

	// Uploaded files must be reachable through the static route.
	resp, err := env.server.Client().Get(env.server.URL + uploaded.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUploadRejectsInvalidType(t *testing.T) {
	env := newTestEnv(t)

	status, raw := env.upload("file", "notes.txt", "text/plain", []byte("hello"))
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "Invalid file type")

	entries, err := os.ReadDir(env.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not touch the disk")
}

func TestUploadRejectsMissingFile(t *testing.T) {
	env := newTestEnv(t)

	status, raw := env.upload("", "", "", nil)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "No file provided")
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	env := newTestEnvMaxUpload(t, 1<<20)

	status, raw := env.upload("file", "big.png", "image/png", bytes.Repeat([]byte{0xAB}, (1<<20)+1))
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(raw), "File too large")
}
