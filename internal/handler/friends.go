package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/risusan11/eikenhub/internal/social"
)

func (h *Handler) handleFriends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.social.Friends(chi.URLParam(r, "user")))
}

func (h *Handler) handleFriendAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	err := h.social.RequestFriend(req.From, req.To)
	if errors.Is(err, social.ErrAlreadyFriends) || errors.Is(err, social.ErrAlreadyRequested) {
		fail(w, http.StatusOK, localizeErr(err))
		return
	}
	if err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) handleFriendAccept(w http.ResponseWriter, r *http.Request) {
	h.friendPair(w, r, h.social.AcceptFriend)
}

func (h *Handler) handleFriendDeny(w http.ResponseWriter, r *http.Request) {
	h.friendPair(w, r, h.social.DenyFriend)
}

func (h *Handler) handleFriendRemove(w http.ResponseWriter, r *http.Request) {
	h.friendPair(w, r, h.social.RemoveFriend)
}

func (h *Handler) friendPair(w http.ResponseWriter, r *http.Request, fn func(user, other string) error) {
	var req struct {
		User  string `json:"user"`
		Other string `json:"other"`
	}
	if err := decodeJSON(r, &req); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := fn(req.User, req.Other); err != nil {
		fail(w, http.StatusBadRequest, localizeErr(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
