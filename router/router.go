// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/quizcast/quizcast/handlers"
	"github.com/quizcast/quizcast/middleware"
	"github.com/quizcast/quizcast/procman"
	"github.com/quizcast/quizcast/quiz"
	"github.com/quizcast/quizcast/session"
	"github.com/quizcast/quizcast/store"
)

func NewRouter(st *store.Store, sessions *session.Manager, dispatcher *quiz.Dispatcher, bots *procman.Registry) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(sessions)
	channelHandler := handlers.NewChannelHandler(st)
	quizHandler := handlers.NewQuizHandler(st, dispatcher)
	botHandler := handlers.NewBotHandler(bots)
	dashboardHandler := handlers.NewDashboardHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /api/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("POST /api/logout", middleware.WithLogging(authHandler.Logout))

	// Channel management (session required)
	mux.HandleFunc("GET /api/channels", middleware.WithLogging(middleware.RequireSession(sessions, channelHandler.List)))
	mux.HandleFunc("POST /api/channels", middleware.WithLogging(middleware.RequireSession(sessions, channelHandler.Create)))
	mux.HandleFunc("PUT /api/channels/{id}", middleware.WithLogging(middleware.RequireSession(sessions, channelHandler.Update)))
	mux.HandleFunc("DELETE /api/channels/{id}", middleware.WithLogging(middleware.RequireSession(sessions, channelHandler.Delete)))

	// Quiz operations (session required)
	mux.HandleFunc("POST /api/upload-questions", middleware.WithLogging(middleware.RequireSession(sessions, quizHandler.UploadQuestions)))
	mux.HandleFunc("POST /api/send-quiz", middleware.WithLogging(middleware.RequireSession(sessions, quizHandler.SendQuiz)))

	// Bot worker control (session required)
	mux.HandleFunc("POST /api/bot-control", middleware.WithLogging(middleware.RequireSession(sessions, botHandler.Control)))

	// Dashboard (session required)
	mux.HandleFunc("GET /api/dashboard", middleware.WithLogging(middleware.RequireSession(sessions, dashboardHandler.Stats)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quizcast admin API v1"))
	})

	return middleware.CORS(mux)
}
