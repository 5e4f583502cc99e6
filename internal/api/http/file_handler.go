package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"launchpad-backend/internal/logger"
	"launchpad-backend/internal/storage"
)

// FileHandler backs the presigned-style URLs issued by the local file
// store: clients PUT file bytes to the upload URL and GET them back from
// the download URL.
type FileHandler struct {
	store storage.FileStore
}

func NewFileHandler(store storage.FileStore) *FileHandler {
	return &FileHandler{store: store}
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// RequestUploadURL issues a fresh object key and the URL to PUT it to.
func (h *FileHandler) RequestUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Filename == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "filename is required"})
		return
	}

	key := storage.NewObjectKey(req.Filename)
	uploadURL, err := h.store.UploadURL(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		writeError(w, err)
		return
	}
	downloadURL, err := h.store.DownloadURL(r.Context(), key, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"key":          key,
		"upload_url":   uploadURL,
		"download_url": downloadURL,
	})
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing key parameter"})
		return
	}

	if err := h.store.Save(key, r.Body); err != nil {
		logger.Error("File upload failed", "key", key, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "upload failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "uploaded", "key": key})
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing key parameter"})
		return
	}

	file, err := h.store.Open(key)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "file not found"})
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := io.Copy(w, file); err != nil {
		logger.Error("File download interrupted", "key", key, "error", err)
	}
}
