// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and HTTP types shared across quizcast.

# Domain Types

Persisted entities mirror the database schema:

  - Channel: a Telegram channel paired with a discussion group
  - Question: a four-option quiz question owned by one channel
  - Schedule: a recurring cron-style trigger for a channel
  - QuizHistory: append-only record of dispatched quiz runs

# Request/Response Types

The admin API uses dedicated request and response structs
(ChannelRequest, SendQuizRequest, BotControlRequest, ...) so handler
validation is explicit and responses are stable JSON shapes.

Errors are returned as ErrorResponse with a status text and message.
*/
package models
