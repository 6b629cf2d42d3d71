// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for Quizcast.

Quizcast sends scheduled quiz polls to Telegram channels and posts
delayed answer explanations to their paired discussion groups. One
binary hosts three workers, selected by subcommand:

	quizcast serve      admin web panel (default)
	quizcast quizbot    scheduled quiz dispatch worker
	quizcast answerbot  explanation release worker

# Starting a Worker

Configuration comes from environment variables or CLI flags:

	ADMIN_PASSWORD=... SESSION_SECRET=... QUIZ_BOT_TOKEN=... quizcast serve
	QUIZ_BOT_TOKEN=... ADMIN_CHAT_ID=... quizcast quizbot
	ANSWER_BOT_TOKEN=... ADMIN_CHAT_ID=... quizcast answerbot

A .env file in the working directory is loaded if present.

# Configuration

Required settings (per mode):

  - ADMIN_PASSWORD (--admin-password): admin panel password (serve)
  - SESSION_SECRET (--session-secret): session cookie signing key (serve)
  - QUIZ_BOT_TOKEN (--quiz-token): quiz bot API token (serve, quizbot)
  - ANSWER_BOT_TOKEN (--answer-token): answer bot API token (answerbot)
  - ADMIN_CHAT_ID (--admin-chat): chat allowed to run bot commands (quizbot, answerbot)

Optional settings:

  - PORT (-p): admin server port (default: 5000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: quizcast.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TIMEZONE (-tz): schedule timezone (default: Asia/Kolkata)
  - DEBUG (--debug): verbose logging

# Architecture

The workers share a handler-based architecture with dependency injection:

  - handlers: admin API request handlers
  - router: route definitions using Go 1.22+ routing
  - middleware: session gating, CORS, logging, JSON helpers
  - session: admin login and signed session cookies
  - store: channels, questions, schedules, history
  - quiz: batch dispatch of timed quiz polls
  - schedule: cron-backed dispatch scheduling
  - match: normalized question matching for observed polls
  - answer: delayed explanation release
  - bot: Telegram long-polling worker loops
  - procman: bot worker process supervision
  - telegram: outbound Telegram API client
  - questionfile: question upload parsing
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
