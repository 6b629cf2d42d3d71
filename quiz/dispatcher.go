// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/store"
	"github.com/quizcast/quizcast/telegram"
)

// Sender is the outbound messaging surface the dispatcher needs.
// *telegram.Client satisfies it.
type Sender interface {
	SendMessage(chatID, text string) error
	SendQuizPoll(chatID string, p telegram.PollParams) (string, error)
}

const (
	// DefaultOpenPeriod is how long each poll accepts answers.
	DefaultOpenPeriod = 300 * time.Second
	// DefaultPacing is the fixed pause between consecutive polls.
	DefaultPacing = 10 * time.Second

	fallbackExplanation = "Check discussion group for detailed explanation."
)

// Outcome reports what one dispatch run actually sent.
type Outcome struct {
	QuestionsSent int
	Skipped       int
}

// Dispatcher sends a batch of least-used questions to a channel as
// timed quiz polls.
type Dispatcher struct {
	store  *store.Store
	sender Sender
	live   *LiveRegistry

	// Overridable in tests
	OpenPeriod time.Duration
	Pacing     time.Duration
}

func NewDispatcher(s *store.Store, sender Sender, live *LiveRegistry) *Dispatcher {
	return &Dispatcher{
		store:      s,
		sender:     sender,
		live:       live,
		OpenPeriod: DefaultOpenPeriod,
		Pacing:     DefaultPacing,
	}
}

// DispatchByTelegramID resolves the external channel identifier first,
// for the bot's /sendquiz command.
func (d *Dispatcher) DispatchByTelegramID(ctx context.Context, channelID string) (Outcome, error) {
	channel, err := d.store.GetChannelByTelegramID(channelID)
	if err != nil {
		return Outcome{}, fmt.Errorf("channel %s: %w", channelID, err)
	}
	return d.Dispatch(ctx, channel)
}

// Dispatch runs one quiz for the channel: announcement, one timed poll
// per selected question with fixed pacing, completion message, then
// last-sent and history bookkeeping. A poll that fails to send is
// logged and skipped; the run continues.
func (d *Dispatcher) Dispatch(ctx context.Context, channel models.Channel) (Outcome, error) {
	batch := channel.QuestionsPerBatch
	if batch <= 0 {
		batch = 10
	}

	questions, err := d.store.QuestionsForDispatch(channel.ID, batch)
	if err != nil {
		return Outcome{}, err
	}
	if len(questions) == 0 {
		slog.Warn("no questions available", "channel", channel.ChannelID)
		if err := d.sender.SendMessage(channel.ChannelID, "❌ No questions available for today's quiz."); err != nil {
			slog.Error("failed to send no-questions notice", "channel", channel.ChannelID, "error", err)
		}
		return Outcome{}, nil
	}

	announcement := fmt.Sprintf("🎓 Quiz Time! 📚\n\nGet ready for %d questions!\nCategory: %s\n\nGood luck! 🍀",
		len(questions), channel.Category)
	if err := d.sender.SendMessage(channel.ChannelID, announcement); err != nil {
		slog.Error("failed to send announcement", "channel", channel.ChannelID, "error", err)
	}

	var outcome Outcome
	for i, q := range questions {
		explanation := q.Explanation
		if explanation == "" {
			explanation = fallbackExplanation
		}

		pollID, err := d.sender.SendQuizPoll(channel.ChannelID, telegram.PollParams{
			Question:      fmt.Sprintf("Q%d: %s", i+1, q.QuestionText),
			Options:       q.Options(),
			CorrectOption: q.CorrectOption,
			Explanation:   explanation,
			OpenPeriod:    int(d.OpenPeriod / time.Second),
		})
		if err != nil {
			slog.Error("failed to send poll", "channel", channel.ChannelID, "question", q.ID, "error", err)
			outcome.Skipped++
			continue
		}

		d.live.Register(pollID, q, channel)
		if err := d.store.IncrementUsage(q.ID); err != nil {
			slog.Error("failed to increment usage", "question", q.ID, "error", err)
		}
		outcome.QuestionsSent++
		slog.Info("poll sent", "channel", channel.ChannelID, "question", q.ID, "poll", pollID)

		if i < len(questions)-1 {
			select {
			case <-ctx.Done():
				return outcome, ctx.Err()
			case <-time.After(d.Pacing):
			}
		}
	}

	if err := d.sender.SendMessage(channel.ChannelID,
		"🎉 Quiz Complete! 🎉\n\nThank you for participating!\nDetailed answers will be posted in the discussion group."); err != nil {
		slog.Error("failed to send completion message", "channel", channel.ChannelID, "error", err)
	}

	now := time.Now()
	if err := d.store.UpdateLastQuizSent(channel.ID, now); err != nil {
		slog.Error("failed to update last_quiz_sent", "channel", channel.ID, "error", err)
	}
	if err := d.store.AddHistory(channel.ID, outcome.QuestionsSent, now); err != nil {
		slog.Error("failed to record quiz history", "channel", channel.ID, "error", err)
	}

	slog.Info("quiz completed", "channel", channel.ChannelID, "sent", outcome.QuestionsSent, "skipped", outcome.Skipped)
	return outcome, nil
}
