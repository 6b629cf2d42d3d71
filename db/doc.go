// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

"sqlite" uses the pure-Go modernc.org/sqlite driver; "postgres" uses lib/pq.
Both are registered as blank imports by main.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		...
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - channels: Telegram channel and its paired discussion group
  - questions: four-option quiz questions, one channel each
  - schedules: recurring dispatch triggers (time-of-day + weekday set)
  - quiz_history: append-only audit of dispatched quiz runs

# Relationships

	channels 1──* questions
	channels 1──* schedules
	channels 1──* quiz_history

Dependent rows are removed explicitly when a channel is deleted; the
schema declares the references without ON DELETE CASCADE so both SQLite
and Postgres behave identically.
*/
package db
