// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/quizcast/quizcast/middleware"
	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/store"
)

type ChannelHandler struct {
	store *store.Store
}

func NewChannelHandler(s *store.Store) *ChannelHandler {
	return &ChannelHandler{store: s}
}

// List handles GET /api/channels
func (h *ChannelHandler) List(w http.ResponseWriter, r *http.Request) {
	channels, err := h.store.ListChannels()
	if err != nil {
		slog.Error("failed to list channels", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, channels)
}

// Create handles POST /api/channels
func (h *ChannelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ChannelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChannelName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_name is required")
		return
	}
	if req.ChannelID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_id is required")
		return
	}

	id, err := h.store.CreateChannel(req)
	if errors.Is(err, store.ErrDuplicateChannel) {
		middleware.ErrorResponse(w, http.StatusConflict, "Channel already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create channel", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	channel, err := h.store.GetChannel(id)
	if err != nil {
		slog.Error("failed to load created channel", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("channel created", "id", id, "channel", req.ChannelID)
	middleware.JSONResponse(w, http.StatusCreated, channel)
}

// Update handles PUT /api/channels/{id}
func (h *ChannelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := channelID(w, r)
	if !ok {
		return
	}

	var req models.ChannelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.store.UpdateChannel(id, req)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Channel not found")
		return
	}
	if err != nil {
		slog.Error("failed to update channel", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	channel, err := h.store.GetChannel(id)
	if err != nil {
		slog.Error("failed to load updated channel", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("channel updated", "id", id)
	middleware.JSONResponse(w, http.StatusOK, channel)
}

// Delete handles DELETE /api/channels/{id}
func (h *ChannelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := channelID(w, r)
	if !ok {
		return
	}

	err := h.store.DeleteChannel(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Channel not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete channel", "id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("channel deleted", "id", id)
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Channel deleted",
	})
}

func channelID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid channel id")
		return 0, false
	}
	return id, true
}
