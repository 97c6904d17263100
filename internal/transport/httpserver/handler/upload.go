package handler

import (
	"errors"
	"fmt"
	"net/http"

	uploadsdomain "pet-tracker-go/internal/domain/uploads"
)

type uploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Uploads.MaxSize()
	// Generous slack for the multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+(1<<20))

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusBadRequest, "file_too_large", tooLargeMessage(maxSize))
			return
		}
		writeError(w, http.StatusBadRequest, "no_file", "No file provided")
		return
	}
	defer file.Close()

	stored, err := h.Uploads.Save(r.Context(), uploadsdomain.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		switch {
		case errors.Is(err, uploadsdomain.ErrInvalidType):
			writeError(w, http.StatusBadRequest, "invalid_file_type", "Invalid file type. Allowed: JPEG, PNG, GIF, WebP")
		case errors.Is(err, uploadsdomain.ErrTooLarge):
			writeError(w, http.StatusBadRequest, "file_too_large", tooLargeMessage(maxSize))
		default:
			h.log.InternalError("upload: save file failed", err, "filename", header.Filename)
			writeError(w, http.StatusInternalServerError, "internal_error", "Failed to upload file")
		}
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		URL:      stored.URL,
		Filename: stored.Filename,
	})
}

func tooLargeMessage(maxSize int64) string {
	return fmt.Sprintf("File too large. Maximum size is %dMB", maxSize/(1<<20))
}
