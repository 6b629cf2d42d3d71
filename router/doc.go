// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quizcast admin API.

# Route Registration

NewRouter returns the root handler with all endpoints registered and
CORS applied:

	handler := router.NewRouter(st, sessions, dispatcher, bots)

# Endpoints

Health:

	GET /health

Authentication (public):

	POST /api/login
	POST /api/logout

Channel management (session required):

	GET    /api/channels
	POST   /api/channels
	PUT    /api/channels/{id}
	DELETE /api/channels/{id}

Quiz operations (session required):

	POST /api/upload-questions
	POST /api/send-quiz

Bot control and dashboard (session required):

	POST /api/bot-control
	GET  /api/dashboard

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(sessions)
	channelHandler := handlers.NewChannelHandler(st)
	quizHandler := handlers.NewQuizHandler(st, dispatcher)

Every route is wrapped with request logging; the protected ones also
with middleware.RequireSession. The whole mux is wrapped with
middleware.CORS for browser frontends.
*/
package router
