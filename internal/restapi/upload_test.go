package restapi

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postImage(t *testing.T, root http.Handler, token, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("imageFile", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/imageUpload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	root.ServeHTTP(rec, req)
	return rec
}

func TestImageUploadSavesFile(t *testing.T) {
	ws, deps := newTestAPI(t)
	token := signupUser(t, ws, "alice", "pw")

	rec := postImage(t, ws.Root(), token, "bike.png", []byte("not-really-a-png"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Filename string `json:"filename"`
	}
	decode(t, rec, &resp)
	require.True(t, strings.HasPrefix(resp.Filename, "/images/"))
	assert.True(t, strings.HasSuffix(resp.Filename, ".png"))

	onDisk := filepath.Join(deps.cfg.System.Workdir, "public", resp.Filename)
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("not-really-a-png"), data)
}

func TestImageUploadRejectsBadExtension(t *testing.T) {
	ws, _ := newTestAPI(t)
	token := signupUser(t, ws, "alice", "pw")

	rec := postImage(t, ws.Root(), token, "evil.exe", []byte("MZ"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Only image files are allowed"}`, rec.Body.String())
}

func TestImageUploadRequiresFile(t *testing.T) {
	ws, _ := newTestAPI(t)
	token := signupUser(t, ws, "alice", "pw")

	req := httptest.NewRequest(http.MethodPost, "/imageUpload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	ws.Root().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
