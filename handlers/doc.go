// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quizcast admin API.

# Handler Types

Each handler is a struct holding its dependencies:

  - AuthHandler: admin login and logout
  - ChannelHandler: channel CRUD
  - QuizHandler: question file upload and manual quiz dispatch
  - BotHandler: start/stop/status of the bot worker processes
  - DashboardHandler: aggregate stats for the admin dashboard

Handlers are created via constructor functions:

	channelHandler := handlers.NewChannelHandler(st)

# Authentication

Login issues a session cookie; every other /api/ route is wrapped in
middleware.RequireSession:

	POST /api/login   → Login (sets session cookie)
	POST /api/logout  → Logout (clears it)

# Channel Management

	GET    /api/channels       → List
	POST   /api/channels       → Create
	PUT    /api/channels/{id}  → Update
	DELETE /api/channels/{id}  → Delete

Deleting a channel cascades to its questions, schedules, and history.

# Quiz Operations

	POST /api/upload-questions → UploadQuestions (multipart: file + channel_id)
	POST /api/send-quiz        → SendQuiz

Uploads are all-or-nothing: one malformed question rejects the whole
file. SendQuiz returns 202 immediately and dispatches in the
background, since a batch takes minutes of poll pacing to send.

# Bot Control

	POST /api/bot-control → Control ({"action": "start|stop|status", "bot_type": "quiz|answer"})

Both control responses and status queries return the current run state
of both bots.
*/
package handlers
