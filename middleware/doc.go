// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Session Gating

Protect admin routes behind a valid session cookie:

	mux.HandleFunc("GET /api/channels", middleware.WithLogging(
		middleware.RequireSession(sessions, handler.List)))

Requests under /api/ without a valid cookie get a 401 JSON error;
page requests are redirected to /login.

# CORS Middleware

Enable cross-origin requests for frontend access by wrapping the
whole mux, as the router does:

	return middleware.CORS(mux)

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization. Preflight OPTIONS requests are
answered directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.ChannelRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged on login attempts.
*/
package middleware
