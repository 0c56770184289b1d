package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/radhikag0/VisionBoard26/internal/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadRoundTrip(t *testing.T) {
	a := &API{Store: docstore.NewMemory(), UploadsDir: t.TempDir(), Origins: []string{"*"}}
	h := a.Router()
	content := []byte("\xff\xd8\xff jpeg-ish bytes")

	body, contentType := multipartFile(t, "file", "photo.jpeg", content)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	url := decodeBody(t, rec)["url"].(string)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/[0-9a-f-]{36}\.jpeg$`), url)

	rec = doJSON(t, h, http.MethodGet, url, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, content, rec.Body.Bytes(), "served bytes match the upload")
}

func TestUploadNamesNeverCollide(t *testing.T) {
	a := &API{Store: docstore.NewMemory(), UploadsDir: t.TempDir(), Origins: []string{"*"}}
	h := a.Router()

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		body, contentType := multipartFile(t, "file", "same-name.png", []byte("png"))
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		url := decodeBody(t, rec)["url"].(string)
		assert.False(t, seen[url])
		seen[url] = true
	}
}

func TestUploadStripsClientPath(t *testing.T) {
	a := &API{Store: docstore.NewMemory(), UploadsDir: t.TempDir(), Origins: []string{"*"}}
	h := a.Router()

	body, contentType := multipartFile(t, "file", "../../etc/passwd", []byte("nope"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	url := decodeBody(t, rec)["url"].(string)
	assert.NotContains(t, url, "..")
	assert.NotContains(t, url, "passwd")
}

func TestUploadRequiresFileField(t *testing.T) {
	a := &API{Store: docstore.NewMemory(), UploadsDir: t.TempDir(), Origins: []string{"*"}}
	h := a.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/upload", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUnknownUploadIs404(t *testing.T) {
	a := &API{Store: docstore.NewMemory(), UploadsDir: t.TempDir(), Origins: []string{"*"}}
	h := a.Router()

	rec := doJSON(t, h, http.MethodGet, "/uploads/missing.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
