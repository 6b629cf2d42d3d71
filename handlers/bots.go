// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizcast/quizcast/middleware"
	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/procman"
)

type BotHandler struct {
	registry *procman.Registry
}

func NewBotHandler(registry *procman.Registry) *BotHandler {
	return &BotHandler{registry: registry}
}

// Control handles POST /api/bot-control
func (h *BotHandler) Control(w http.ResponseWriter, r *http.Request) {
	var req models.BotControlRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Action {
	case "status":
		middleware.JSONResponse(w, http.StatusOK, h.registry.Status())
		return
	case "start", "stop":
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "action must be start, stop, or status")
		return
	}

	var err error
	if req.Action == "start" {
		err = h.registry.Start(req.BotType)
	} else {
		err = h.registry.Stop(req.BotType)
	}
	if errors.Is(err, procman.ErrUnknownBot) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "bot_type must be quiz or answer")
		return
	}
	if err != nil {
		slog.Error("bot control failed", "action", req.Action, "bot", req.BotType, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Bot control failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.registry.Status())
}
