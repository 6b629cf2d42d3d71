// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quizcast/quizcast/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateChannel = errors.New("channel already exists")
)

// Store wraps the database connection with short-lived per-call queries.
// Placeholders use the $N form, which both the sqlite and postgres
// drivers accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Channels

func (s *Store) ListChannels() ([]models.Channel, error) {
	rows, err := s.db.Query(`
		SELECT id, channel_name, channel_id, discussion_group_id, category,
		       questions_per_batch, active, last_quiz_sent, created_at
		FROM channels ORDER BY channel_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	var channels []models.Channel
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

func (s *Store) GetChannel(id int64) (models.Channel, error) {
	row := s.db.QueryRow(`
		SELECT id, channel_name, channel_id, discussion_group_id, category,
		       questions_per_batch, active, last_quiz_sent, created_at
		FROM channels WHERE id = $1
	`, id)
	return scanChannel(row)
}

// GetChannelByTelegramID looks up a channel by its external identifier
// (e.g. "@mychannel" or "-100123").
func (s *Store) GetChannelByTelegramID(channelID string) (models.Channel, error) {
	row := s.db.QueryRow(`
		SELECT id, channel_name, channel_id, discussion_group_id, category,
		       questions_per_batch, active, last_quiz_sent, created_at
		FROM channels WHERE channel_id = $1
	`, channelID)
	return scanChannel(row)
}

func (s *Store) CreateChannel(req models.ChannelRequest) (int64, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM channels WHERE channel_id = $1`, req.ChannelID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check channel: %w", err)
	}
	if exists > 0 {
		return 0, ErrDuplicateChannel
	}

	batch := req.QuestionsPerBatch
	if batch <= 0 {
		batch = 10
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var id int64
	err = s.db.QueryRow(`
		INSERT INTO channels (channel_name, channel_id, discussion_group_id, category, questions_per_batch, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, req.ChannelName, req.ChannelID, req.DiscussionGroupID, req.Category, batch, active, time.Now()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert channel: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateChannel(id int64, req models.ChannelRequest) error {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	res, err := s.db.Exec(`
		UPDATE channels
		SET channel_name = $1, channel_id = $2, discussion_group_id = $3,
		    category = $4, questions_per_batch = $5, active = $6
		WHERE id = $7
	`, req.ChannelName, req.ChannelID, req.DiscussionGroupID, req.Category, req.QuestionsPerBatch, active, id)
	if err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteChannel removes a channel together with its questions and
// schedules in one transaction.
func (s *Store) DeleteChannel(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM channels WHERE id = $1`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check channel: %w", err)
	}
	if exists == 0 {
		return ErrNotFound
	}

	for _, q := range []string{
		`DELETE FROM questions WHERE channel_id = $1`,
		`DELETE FROM schedules WHERE channel_id = $1`,
		`DELETE FROM quiz_history WHERE channel_id = $1`,
		`DELETE FROM channels WHERE id = $1`,
	} {
		if _, err := tx.Exec(q, id); err != nil {
			return fmt.Errorf("failed to delete channel data: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) UpdateLastQuizSent(channelID int64, sentAt time.Time) error {
	_, err := s.db.Exec(`UPDATE channels SET last_quiz_sent = $1 WHERE id = $2`, sentAt, channelID)
	if err != nil {
		return fmt.Errorf("failed to update last_quiz_sent: %w", err)
	}
	return nil
}

// Questions

// QuestionsForDispatch returns up to limit questions for the channel,
// least-used first with random tie-break so repetition spreads evenly.
func (s *Store) QuestionsForDispatch(channelID int64, limit int) ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT id, channel_id, question_text, option_a, option_b, option_c, option_d,
		       correct_option, explanation, reason, used_count, created_at
		FROM questions WHERE channel_id = $1
		ORDER BY used_count ASC, RANDOM() LIMIT $2
	`, channelID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select questions: %w", err)
	}
	defer rows.Close()
	return collectQuestions(rows)
}

func (s *Store) CountQuestions(channelID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM questions WHERE channel_id = $1`, channelID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

func (s *Store) IncrementUsage(questionID int64) error {
	_, err := s.db.Exec(`UPDATE questions SET used_count = used_count + 1 WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}
	return nil
}

// InsertQuestions adds a validated upload batch inside one transaction.
// Any failure rolls the whole batch back.
func (s *Store) InsertQuestions(channelID int64, questions []models.Question) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, q := range questions {
		_, err := tx.Exec(`
			INSERT INTO questions (channel_id, question_text, option_a, option_b, option_c, option_d,
			                       correct_option, explanation, reason, used_count, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, $10)
		`, channelID, q.QuestionText, q.OptionA, q.OptionB, q.OptionC, q.OptionD,
			q.CorrectOption, q.Explanation, q.Reason, now)
		if err != nil {
			return 0, fmt.Errorf("failed to insert question: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit insert: %w", err)
	}
	return len(questions), nil
}

// Schedules

func (s *Store) ActiveSchedules() ([]models.Schedule, error) {
	rows, err := s.db.Query(`
		SELECT id, channel_id, schedule_time, days_of_week, interval_type, active, created_at
		FROM schedules WHERE active = $1
	`, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.Schedule
	for rows.Next() {
		var sc models.Schedule
		if err := rows.Scan(&sc.ID, &sc.ChannelID, &sc.ScheduleTime, &sc.DaysOfWeek,
			&sc.IntervalType, &sc.Active, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sc)
	}
	return schedules, rows.Err()
}

// History

func (s *Store) AddHistory(channelID int64, questionsSent int, sentAt time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO quiz_history (channel_id, questions_sent, sent_at)
		VALUES ($1, $2, $3)
	`, channelID, questionsSent, sentAt)
	if err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// Matcher feed

// IndexRow is a question joined with its channel, the unit the in-memory
// matcher index is built from.
type IndexRow struct {
	Question          models.Question
	ChannelTelegramID string
	DiscussionGroupID string
	ChannelName       string
}

// ActiveQuestionRows returns every question belonging to an active channel.
func (s *Store) ActiveQuestionRows() ([]IndexRow, error) {
	rows, err := s.db.Query(`
		SELECT q.id, q.channel_id, q.question_text, q.option_a, q.option_b, q.option_c, q.option_d,
		       q.correct_option, q.explanation, q.reason, q.used_count, q.created_at,
		       c.channel_id, c.discussion_group_id, c.channel_name
		FROM questions q
		JOIN channels c ON q.channel_id = c.id
		WHERE c.active = $1
	`, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load question index: %w", err)
	}
	defer rows.Close()

	var out []IndexRow
	for rows.Next() {
		var r IndexRow
		var explanation, reason, discussion sql.NullString
		if err := rows.Scan(&r.Question.ID, &r.Question.ChannelID, &r.Question.QuestionText,
			&r.Question.OptionA, &r.Question.OptionB, &r.Question.OptionC, &r.Question.OptionD,
			&r.Question.CorrectOption, &explanation, &reason, &r.Question.UsedCount, &r.Question.CreatedAt,
			&r.ChannelTelegramID, &discussion, &r.ChannelName); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		r.Question.Explanation = explanation.String
		r.Question.Reason = reason.String
		r.DiscussionGroupID = discussion.String
		out = append(out, r)
	}
	return out, rows.Err()
}

// Dashboard

func (s *Store) DashboardStats() (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM channels`).Scan(&stats.TotalChannels); err != nil {
		return stats, fmt.Errorf("failed to count channels: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM channels WHERE active = $1`, true).Scan(&stats.ActiveChannels); err != nil {
		return stats, fmt.Errorf("failed to count active channels: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&stats.TotalQuestions); err != nil {
		return stats, fmt.Errorf("failed to count questions: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT channel_name, last_quiz_sent, questions_per_batch
		FROM channels
		WHERE last_quiz_sent IS NOT NULL
		ORDER BY last_quiz_sent DESC
		LIMIT 10
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to load recent activity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.RecentActivity
		if err := rows.Scan(&a.ChannelName, &a.LastQuizSent, &a.QuestionsPerBatch); err != nil {
			return stats, fmt.Errorf("failed to scan activity: %w", err)
		}
		stats.RecentActivity = append(stats.RecentActivity, a)
	}
	return stats, rows.Err()
}

// scanning helpers

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChannel(row rowScanner) (models.Channel, error) {
	var ch models.Channel
	var discussion sql.NullString
	var lastSent sql.NullTime
	err := row.Scan(&ch.ID, &ch.ChannelName, &ch.ChannelID, &discussion, &ch.Category,
		&ch.QuestionsPerBatch, &ch.Active, &lastSent, &ch.CreatedAt)
	if err == sql.ErrNoRows {
		return ch, ErrNotFound
	}
	if err != nil {
		return ch, fmt.Errorf("failed to scan channel: %w", err)
	}
	ch.DiscussionGroupID = discussion.String
	if lastSent.Valid {
		t := lastSent.Time
		ch.LastQuizSent = &t
	}
	return ch, nil
}

func collectQuestions(rows *sql.Rows) ([]models.Question, error) {
	var questions []models.Question
	for rows.Next() {
		var q models.Question
		var explanation, reason sql.NullString
		if err := rows.Scan(&q.ID, &q.ChannelID, &q.QuestionText, &q.OptionA, &q.OptionB,
			&q.OptionC, &q.OptionD, &q.CorrectOption, &explanation, &reason,
			&q.UsedCount, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.Explanation = explanation.String
		q.Reason = reason.String
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
