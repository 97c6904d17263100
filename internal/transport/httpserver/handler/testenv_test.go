package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"pet-tracker-go/internal/config"
	entriesdomain "pet-tracker-go/internal/domain/entries"
	petsdomain "pet-tracker-go/internal/domain/pets"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	uploadsdomain "pet-tracker-go/internal/domain/uploads"
	"pet-tracker-go/internal/repository/inmemory"
	"pet-tracker-go/internal/transport/httpserver"
	"pet-tracker-go/internal/transport/httpserver/handler"
	"pet-tracker-go/pkg/logger"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t         *testing.T
	server    *httptest.Server
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvMaxUpload(t, config.DefaultMaxUploadSize)
}

func newTestEnvMaxUpload(t *testing.T, maxUpload int64) *testEnv {
	t.Helper()

	store := inmemory.NewStore()
	uploadDir := t.TempDir()
	log := logger.New(io.Discard, slog.LevelError, "text")

	handlers := handler.New(
		petsdomain.NewService(store.Pets()),
		trackersdomain.NewService(store.Trackers()),
		entriesdomain.NewService(store.Entries()),
		uploadsdomain.NewService(uploadsdomain.NewDiskStore(uploadDir), "/uploads", maxUpload),
		log,
	)

	cfg := config.Config{
		HTTPPort: "0",
		Upload: config.UploadConfig{
			Dir:        uploadDir,
			PublicPath: "/uploads",
			MaxSize:    maxUpload,
		},
	}

	server := httptest.NewServer(httpserver.NewRouter(cfg, handlers))
	t.Cleanup(server.Close)

	return &testEnv{t: t, server: server, uploadDir: uploadDir}
}

func (e *testEnv) request(method, path string, body interface{}) (int, json.RawMessage) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(e.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)

	return resp.StatusCode, raw
}

func (e *testEnv) upload(fieldName, filename, contentType string, content []byte) (int, json.RawMessage) {
	e.t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fieldName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(e.t, err)
		_, err = part.Write(content)
		require.NoError(e.t, err)
	}
	require.NoError(e.t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/api/upload", &buf)
	require.NoError(e.t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.server.Client().Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)

	return resp.StatusCode, raw
}

func uintPath(prefix string, id uint) string {
	return prefix + strconv.FormatUint(uint64(id), 10)
}

func decode(t *testing.T, raw json.RawMessage, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dst))
}

func (e *testEnv) createPet(name string) string {
	e.t.Helper()

	status, raw := e.request(http.MethodPost, "/api/pets", map[string]interface{}{
		"name": name, "gender": "Male", "species": "Dog", "breed": "Labrador", "age": 5,
	})
	require.Equal(e.t, http.StatusCreated, status, "create pet: %s", raw)

	var pet struct {
		PetID string `json:"petId"`
	}
	decode(e.t, raw, &pet)
	require.NotEmpty(e.t, pet.PetID)
	return pet.PetID
}

func (e *testEnv) createTracker(petID, name string, options []map[string]string) uint {
	e.t.Helper()

	status, raw := e.request(http.MethodPost, "/api/trackers", map[string]interface{}{
		"name": name, "petId": petID, "options": options,
	})
	require.Equal(e.t, http.StatusCreated, status, "create tracker: %s", raw)

	var tracker struct {
		ID uint `json:"id"`
	}
	decode(e.t, raw, &tracker)
	require.NotZero(e.t, tracker.ID)
	return tracker.ID
}

func (e *testEnv) createEntry(petID string, trackerID uint, data []map[string]string) uint {
	e.t.Helper()

	status, raw := e.request(http.MethodPost, "/api/entries", map[string]interface{}{
		"trackerId": trackerID, "petId": petID, "data": data,
	})
	require.Equal(e.t, http.StatusCreated, status, "create entry: %s", raw)

	var entry struct {
		ID uint `json:"id"`
	}
	decode(e.t, raw, &entry)
	require.NotZero(e.t, entry.ID)
	return entry.ID
}
