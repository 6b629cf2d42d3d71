package models

import "time"

// Bot worker kinds managed by the process registry
const (
	BotQuiz   = "quiz"
	BotAnswer = "answer"
)

// Worker states reported by bot-control
const (
	StateRunning = "running"
	StateStopped = "stopped"
)

// Domain types

type Channel struct {
	ID                int64      `json:"id"`
	ChannelName       string     `json:"channel_name"`
	ChannelID         string     `json:"channel_id"`
	DiscussionGroupID string     `json:"discussion_group_id"`
	Category          string     `json:"category"`
	QuestionsPerBatch int        `json:"questions_per_batch"`
	Active            bool       `json:"active"`
	LastQuizSent      *time.Time `json:"last_quiz_sent,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type Question struct {
	ID            int64     `json:"id"`
	ChannelID     int64     `json:"channel_id"`
	QuestionText  string    `json:"question_text"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectOption int       `json:"correct_option"`
	Explanation   string    `json:"explanation"`
	Reason        string    `json:"reason"`
	UsedCount     int       `json:"used_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Options returns the four option texts in display order.
func (q Question) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

type Schedule struct {
	ID           int64     `json:"id"`
	ChannelID    int64     `json:"channel_id"`
	ScheduleTime string    `json:"schedule_time"` // "HH:MM", 24h
	DaysOfWeek   string    `json:"days_of_week"`  // csv of 0-6, 0=Monday
	IntervalType string    `json:"interval_type"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type QuizHistory struct {
	ID            int64     `json:"id"`
	ChannelID     int64     `json:"channel_id"`
	QuestionsSent int       `json:"questions_sent"`
	SentAt        time.Time `json:"sent_at"`
}

// Request types

type ChannelRequest struct {
	ChannelName       string `json:"channel_name"`
	ChannelID         string `json:"channel_id"`
	DiscussionGroupID string `json:"discussion_group_id"`
	Category          string `json:"category"`
	QuestionsPerBatch int    `json:"questions_per_batch"`
	Active            *bool  `json:"active"`
}

type SendQuizRequest struct {
	ChannelID int64 `json:"channel_id"`
}

type BotControlRequest struct {
	Action  string `json:"action"`   // start, stop, status
	BotType string `json:"bot_type"` // quiz, answer
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	Message        string `json:"message"`
	QuestionsAdded int    `json:"questions_added"`
}

type BotStatusResponse struct {
	QuizBot   string `json:"quiz_bot"`
	AnswerBot string `json:"answer_bot"`
}

type DashboardStats struct {
	TotalChannels  int              `json:"total_channels"`
	ActiveChannels int              `json:"active_channels"`
	TotalQuestions int              `json:"total_questions"`
	RecentActivity []RecentActivity `json:"recent_activity"`
}

type RecentActivity struct {
	ChannelName       string    `json:"channel_name"`
	LastQuizSent      time.Time `json:"last_quiz_sent"`
	LastQuizSentHuman string    `json:"last_quiz_sent_human"`
	QuestionsPerBatch int       `json:"questions_per_batch"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
