// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/quizcast/quizcast/middleware"
	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/questionfile"
	"github.com/quizcast/quizcast/quiz"
	"github.com/quizcast/quizcast/store"
)

// maxUploadBytes caps question file uploads at 10 MB.
const maxUploadBytes = 10 << 20

type QuizHandler struct {
	store      *store.Store
	dispatcher *quiz.Dispatcher
}

func NewQuizHandler(s *store.Store, d *quiz.Dispatcher) *QuizHandler {
	return &QuizHandler{store: s, dispatcher: d}
}

// UploadQuestions handles POST /api/upload-questions
func (h *QuizHandler) UploadQuestions(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	channelID, err := strconv.ParseInt(r.FormValue("channel_id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "channel_id is required")
		return
	}

	if _, err := h.store.GetChannel(channelID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Channel not found")
			return
		}
		slog.Error("failed to load channel", "id", channelID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		slog.Error("failed to read upload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	questions, err := questionfile.Parse(data)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	added, err := h.store.InsertQuestions(channelID, questions)
	if err != nil {
		slog.Error("failed to insert questions", "channel", channelID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("questions uploaded", "channel", channelID, "count", added)
	middleware.JSONResponse(w, http.StatusOK, models.UploadResponse{
		Message:        fmt.Sprintf("Added %d questions", added),
		QuestionsAdded: added,
	})
}

// SendQuiz handles POST /api/send-quiz. The dispatch itself runs in
// the background: poll pacing takes minutes, far past any sensible
// request timeout.
func (h *QuizHandler) SendQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.SendQuizRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	channel, err := h.store.GetChannel(req.ChannelID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Channel not found")
		return
	}
	if err != nil {
		slog.Error("failed to load channel", "id", req.ChannelID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	go func() {
		outcome, err := h.dispatcher.Dispatch(context.Background(), channel)
		if err != nil {
			slog.Error("manual quiz dispatch failed", "channel", channel.ChannelID, "error", err)
			return
		}
		slog.Info("manual quiz dispatch finished",
			"channel", channel.ChannelID,
			"sent", outcome.QuestionsSent,
			"skipped", outcome.Skipped,
		)
	}()

	middleware.JSONResponse(w, http.StatusAccepted, models.MessageResponse{
		Message: fmt.Sprintf("Quiz dispatch started for %s", channel.ChannelName),
	})
}
