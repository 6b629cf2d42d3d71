// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session manages admin panel authentication.

# Tokens

A session token is a random UUID joined with its HMAC-SHA256
signature:

	token, err := manager.Login(password)
	err = manager.Validate(token)

The signature is keyed with the SESSION_SECRET configured at startup,
so a client cannot mint a passing token without it. The UUID half is
looked up in an in-memory session table with a 24 hour expiry;
restarting the server invalidates all sessions.

# Login

There is a single admin identity. Login compares the submitted
password against ADMIN_PASSWORD in constant time and issues a token on
success. Logout removes the session server-side; the cookie itself is
cleared by the handler.
*/
package session
