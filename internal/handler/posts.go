package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/risusan11/eikenhub/internal/social"
)

func (h *Handler) handleListBoards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.social.Boards())
}

func (h *Handler) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	board, err := h.social.CreateBoard(req.Name)
	if errors.Is(err, social.ErrBoardExists) {
		fail(w, http.StatusOK, localizeErr(err))
		return
	}
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "server": board})
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.social.Posts(chi.URLParam(r, "boardID")))
}

func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Text  string `json:"text"`
		Image string `json:"image"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	post, err := h.social.CreatePost(chi.URLParam(r, "boardID"), req.Name, req.Text, req.Image)
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID   string `json:"id"`
		Diff int    `json:"diff"`
		User string `json:"user"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	update, err := h.social.ApplyLike(chi.URLParam(r, "boardID"), req.ID, req.User, req.Diff)
	if errors.Is(err, social.ErrPostNotFound) {
		fail(w, http.StatusNotFound, localizeErr(err))
		return
	}
	if err != nil {
		fail(w, http.StatusInternalServerError, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, update)
}

func (h *Handler) handleReply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PostID string `json:"postId"`
		Name   string `json:"name"`
		Text   string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	reply, err := h.social.AddReply(chi.URLParam(r, "boardID"), req.PostID, req.Name, req.Text)
	if errors.Is(err, social.ErrPostNotFound) {
		fail(w, http.StatusNotFound, localizeErr(err))
		return
	}
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

// handleDelete removes a post, or a single reply when replyId is set.
// Failures report ok:false with status 200.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      string `json:"id"`
		ReplyID string `json:"replyId"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	boardID := chi.URLParam(r, "boardID")
	var err error
	if req.ReplyID != "" {
		err = h.social.DeleteReply(boardID, req.ID, req.ReplyID)
	} else {
		err = h.social.DeletePost(boardID, req.ID)
	}
	if err != nil {
		fail(w, http.StatusOK, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
