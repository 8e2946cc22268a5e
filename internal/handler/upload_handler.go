package handlers

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// POST /api/upload-image выдает presigned URL, файл грузится напрямую в хранилище
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.UploadService.GenerateUploadURL(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, resp, http.StatusOK)
}

// GET /api/images/{bucket}/{object} проксирует картинку из хранилища
func (h *Handlers) ServeImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucketName := vars["bucket"]
	objectName := vars["object"]

	object, info, err := h.Storage.GetObject(r.Context(), bucketName, objectName)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	defer object.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000")

	// headers are already sent, an error here can only be logged
	if _, err := io.Copy(w, object); err != nil {
		log.Printf("Ошибка при отдаче изображения %s/%s: %v", bucketName, objectName, err)
	}
}
