package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// handleUpload streams one multipart file to the uploads directory under a
// freshly minted name. Only the extension of the client-supplied filename is
// kept, so names can neither collide nor escape the directory.
func (a *API) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "A file field is required")
		return
	}
	defer file.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(a.UploadsDir, name))
	if err != nil {
		zap.S().Errorw("upload create failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "File upload failed: could not store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		zap.S().Errorw("upload write failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "File upload failed: could not store file")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": "/uploads/" + name})
}
