// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/quizcast/quizcast/cliparse"
	dbschema "github.com/quizcast/quizcast/db"
	"github.com/quizcast/quizcast/models"
)

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own uniquely named database so tests stay isolated.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// A single connection keeps the shared in-memory database alive for
	// the duration of the test.
	conn.SetMaxOpenConns(1)

	if err := dbschema.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Mode:          cliparse.ModeServe,
		Port:          5000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		Timezone:      "Asia/Kolkata",
		AdminPassword: "test-password",
		SessionSecret: "test-session-secret",
		QuizBotToken:  "123:test-quiz-token",
	}
}

// CreateTestChannel inserts a channel and returns its ID.
func CreateTestChannel(t *testing.T, conn *sql.DB, ch models.Channel) int64 {
	t.Helper()

	if ch.ChannelName == "" {
		ch.ChannelName = "Test Channel"
	}
	if ch.ChannelID == "" {
		ch.ChannelID = "@test"
	}
	if ch.Category == "" {
		ch.Category = "General Knowledge"
	}
	if ch.QuestionsPerBatch == 0 {
		ch.QuestionsPerBatch = 10
	}

	var id int64
	err := conn.QueryRow(`
		INSERT INTO channels (channel_name, channel_id, discussion_group_id, category, questions_per_batch, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, ch.ChannelName, ch.ChannelID, ch.DiscussionGroupID, ch.Category,
		ch.QuestionsPerBatch, true, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test channel: %v", err)
	}
	return id
}

// AddTestQuestion inserts a question and returns its ID.
func AddTestQuestion(t *testing.T, conn *sql.DB, channelID int64, text string, usedCount int) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO questions (channel_id, question_text, option_a, option_b, option_c, option_d,
		                       correct_option, explanation, reason, used_count, created_at)
		VALUES ($1, $2, 'Option A', 'Option B', 'Option C', 'Option D', 1, 'Because B.', '', $3, $4)
		RETURNING id
	`, channelID, text, usedCount, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return id
}

// AddTestSchedule inserts an active schedule and returns its ID.
func AddTestSchedule(t *testing.T, conn *sql.DB, channelID int64, timeOfDay, days string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO schedules (channel_id, schedule_time, days_of_week, interval_type, active, created_at)
		VALUES ($1, $2, $3, 'weekly', $4, $5)
		RETURNING id
	`, channelID, timeOfDay, days, true, time.Now()).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test schedule: %v", err)
	}
	return id
}
