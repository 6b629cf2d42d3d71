// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/quizcast/quizcast/middleware"
	"github.com/quizcast/quizcast/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// Stats handles GET /api/dashboard
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.DashboardStats()
	if err != nil {
		slog.Error("failed to load dashboard stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range stats.RecentActivity {
		stats.RecentActivity[i].LastQuizSentHuman = humanize.Time(stats.RecentActivity[i].LastQuizSent)
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}
