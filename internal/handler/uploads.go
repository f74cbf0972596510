package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/risusan11/eikenhub/internal/i18n"
)

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// saveUpload stores the file under a random name and returns its web
// path.
func (h *Handler) saveUpload(file multipart.File, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", errors.New("unsupported file type: " + ext)
	}

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.uploads, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		fail(w, http.StatusBadRequest, i18n.T("ErrUserOrFileMissing"))
		return
	}
	defer file.Close()

	url, err := h.saveUpload(file, header.Filename)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "url": url})
}
