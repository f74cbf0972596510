package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/risusan11/eikenhub/internal/i18n"
)

func (h *Handler) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.social.Register(req.Name)
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "profile": p})
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("user")
	if name == "" {
		name = r.URL.Query().Get("name")
	}
	p, err := h.social.Profile(name)
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	name := r.FormValue("name")
	if name == "" {
		fail(w, http.StatusBadRequest, i18n.T("ErrNameRequired"))
		return
	}

	var icon string
	if file, header, err := r.FormFile("icon"); err == nil {
		defer file.Close()
		icon, err = h.saveUpload(file, header.Filename)
		if err != nil {
			fail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	p, err := h.social.UpdateProfile(name, r.FormValue("bio"), r.FormValue("status"), icon)
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "profile": p})
}

func (h *Handler) handleBannerUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	name := r.FormValue("name")
	file, header, err := r.FormFile("banner")
	if name == "" || err != nil {
		fail(w, http.StatusBadRequest, i18n.T("ErrUserOrFileMissing"))
		return
	}
	defer file.Close()

	banner, err := h.saveUpload(file, header.Filename)
	if err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.social.UpdateBanner(name, banner)
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "profile": p})
}

func (h *Handler) handleSetIcon(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Icon string `json:"icon"`
	}
	if err := decodeJSON(r, &req); err != nil || req.Icon == "" {
		fail(w, http.StatusBadRequest, i18n.T("ErrUserOrFileMissing"))
		return
	}
	p, err := h.social.SetIcon(req.Name, req.Icon)
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "profile": p})
}

// handleIcons lists the preset icon files as web paths.
func (h *Handler) handleIcons(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.icons)
	if err != nil {
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	icons := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ext := strings.ToLower(filepath.Ext(e.Name())); allowedExt[ext] {
			icons = append(icons, "/icons/"+e.Name())
		}
	}
	writeJSON(w, http.StatusOK, icons)
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.social.Notifications(chi.URLParam(r, "user")))
}
