// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package answer posts delayed explanations for quiz polls to the
// paired discussion group.
package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/quizcast/quizcast/match"
)

// DefaultWait exceeds the poll's 300 second open window by a fixed
// buffer so the explanation lands after the poll closes.
const DefaultWait = 320 * time.Second

var (
	ErrNoMatch           = errors.New("no matching question")
	ErrNoDiscussionGroup = errors.New("no discussion group configured")
)

// Sender is the outbound surface the releaser needs. *telegram.Client
// satisfies it.
type Sender interface {
	SendMessage(chatID, text string) error
}

// Releaser matches incoming poll questions against the question bank
// and, after a fixed wait, sends the stored explanation to the
// channel's discussion group. Each poll event runs independently; the
// caller starts one goroutine per event.
type Releaser struct {
	bank   *match.Bank
	sender Sender
	loc    *time.Location

	// Wait is overridable in tests.
	Wait time.Duration
}

func NewReleaser(bank *match.Bank, sender Sender, loc *time.Location) *Releaser {
	return &Releaser{bank: bank, sender: sender, loc: loc, Wait: DefaultWait}
}

// HandlePoll processes one observed poll. Unmatched polls and polls
// whose channel has no discussion group are dropped with a log line.
// The wait is a blind fixed delay, cancellable only through ctx.
func (r *Releaser) HandlePoll(ctx context.Context, pollQuestion string) error {
	key := match.Normalize(pollQuestion)
	entry, ok := r.bank.Snapshot().Find(key)
	if !ok {
		slog.Info("no matching question for poll", "question", pollQuestion)
		return ErrNoMatch
	}
	if entry.DiscussionGroupID == "" {
		slog.Warn("no discussion group configured", "channel", entry.ChannelName, "question", pollQuestion)
		return ErrNoDiscussionGroup
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.Wait):
	}

	text := composeExplanation(entry, time.Now().In(r.loc))
	if err := r.sender.SendMessage(entry.DiscussionGroupID, text); err != nil {
		slog.Error("failed to send explanation", "group", entry.DiscussionGroupID, "error", err)
		return err
	}
	slog.Info("explanation released", "group", entry.DiscussionGroupID, "question", entry.Question.ID)
	return nil
}

// Reload rebuilds the underlying question bank.
func (r *Releaser) Reload() error {
	return r.bank.Reload()
}

// Questions reports the size of the current bank snapshot.
func (r *Releaser) Questions() int {
	return r.bank.Snapshot().Len()
}

func composeExplanation(e match.Entry, now time.Time) string {
	q := e.Question
	options := q.Options()
	letter := string(rune('A' + q.CorrectOption))

	var b strings.Builder
	b.WriteString("📝 Answer Explanation\n\n")
	fmt.Fprintf(&b, "❓ Question: %s\n\n", q.QuestionText)
	fmt.Fprintf(&b, "✅ Correct Answer: %s - %s\n\n", letter, options[q.CorrectOption])
	if q.Explanation != "" {
		fmt.Fprintf(&b, "💡 Explanation: %s\n\n", q.Explanation)
	}
	if q.Reason != "" {
		fmt.Fprintf(&b, "🔍 Detailed Reason: %s\n\n", q.Reason)
	}
	fmt.Fprintf(&b, "📚 Channel: %s\n", e.ChannelName)
	fmt.Fprintf(&b, "⏰ Answered at: %s", now.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}
