// Package handler exposes the JSON API, the websocket endpoint and the
// uploaded-file server.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/risusan11/eikenhub/internal/grader"
	"github.com/risusan11/eikenhub/internal/i18n"
	"github.com/risusan11/eikenhub/internal/realtime"
	"github.com/risusan11/eikenhub/internal/social"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	social  *social.Service
	grader  *grader.Service
	hub     *realtime.Hub
	uploads string
	icons   string
}

// New creates a Handler and ensures the upload directory exists.
func New(soc *social.Service, gr *grader.Service, hub *realtime.Hub, uploadDir, iconsDir string) (*Handler, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	return &Handler{social: soc, grader: gr, hub: hub, uploads: uploadDir, icons: iconsDir}, nil
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.handleHealthz)
	r.Handle("/ws", h.hub)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploads))))
	r.Handle("/icons/*", http.StripPrefix("/icons/", http.FileServer(http.Dir(h.icons))))

	r.Route("/api", func(r chi.Router) {
		r.Post("/registerUser", h.handleRegisterUser)
		r.Post("/saveScore", h.handleSaveScore)
		r.Post("/submitTest", h.handleSubmitTest)
		r.Get("/scores", h.handleScores)
		r.Post("/gradeWriting", h.handleGradeWriting)

		r.Get("/servers", h.handleListBoards)
		r.Post("/servers", h.handleCreateBoard)
		r.Get("/posts/{boardID}", h.handleListPosts)
		r.Post("/posts/{boardID}", h.handleCreatePost)
		r.Post("/posts/like/{boardID}", h.handleLike)
		r.Post("/posts/reply/{boardID}", h.handleReply)
		r.Post("/posts/delete/{boardID}", h.handleDelete)

		r.Get("/friends/{user}", h.handleFriends)
		r.Post("/friends/add", h.handleFriendAdd)
		r.Post("/friends/accept", h.handleFriendAccept)
		r.Post("/friends/deny", h.handleFriendDeny)
		r.Post("/friends/remove", h.handleFriendRemove)

		r.Get("/user/profile", h.handleProfile)
		r.Post("/user/profile/update", h.handleProfileUpdate)
		r.Post("/user/banner/update", h.handleBannerUpdate)
		r.Post("/user/icon", h.handleSetIcon)
		r.Get("/user/icons", h.handleIcons)

		r.Get("/notifications/{user}", h.handleNotifications)
		r.Post("/upload", h.handleUpload)
	})
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// localizeErr maps service errors onto user-facing messages in the
// configured language.
func localizeErr(err error) string {
	switch {
	case errors.Is(err, social.ErrNameRequired):
		return i18n.T("ErrNameRequired")
	case errors.Is(err, social.ErrBoardExists):
		return i18n.T("ErrBoardExists")
	case errors.Is(err, social.ErrAlreadyFriends):
		return i18n.T("ErrAlreadyFriends")
	case errors.Is(err, social.ErrAlreadyRequested):
		return i18n.T("ErrAlreadyRequested")
	case errors.Is(err, social.ErrPostNotFound):
		return i18n.T("ErrPostNotFound")
	}
	return err.Error()
}
