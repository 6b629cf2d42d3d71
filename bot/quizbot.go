// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quizcast/quizcast/quiz"
	"github.com/quizcast/quizcast/schedule"
	"github.com/quizcast/quizcast/store"
	"github.com/quizcast/quizcast/telegram"
)

// QuizBot runs the quiz dispatch worker: the cron scheduler plus a
// command interface for the admin.
type QuizBot struct {
	client      *telegram.Client
	store       *store.Store
	dispatcher  *quiz.Dispatcher
	scheduler   *schedule.Scheduler
	adminChatID int64
	send        func(chatID, text string) error
}

func NewQuizBot(client *telegram.Client, st *store.Store, d *quiz.Dispatcher, sched *schedule.Scheduler, adminChatID int64) *QuizBot {
	return &QuizBot{
		client:      client,
		store:       st,
		dispatcher:  d,
		scheduler:   sched,
		adminChatID: adminChatID,
		send:        client.SendMessage,
	}
}

// Run loads schedules, starts the cron loop, and polls for commands
// until ctx is cancelled.
func (b *QuizBot) Run(ctx context.Context) error {
	if err := b.scheduler.LoadFromStore(); err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	b.scheduler.Start()
	defer b.scheduler.Stop()
	slog.Info("quiz bot started", "scheduled_jobs", b.scheduler.Jobs())

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.client.API.GetUpdatesChan(u)
	defer b.client.API.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *QuizBot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.From.ID != b.adminChatID {
		slog.Warn("ignoring command from non-admin", "from", msg.From, "command", msg.Command())
		return
	}
	chatID := fmt.Sprint(msg.Chat.ID)

	switch msg.Command() {
	case "start":
		b.reply(chatID, "Quiz bot is running. Commands: /sendquiz <channel>, /check_questions <channel>, /list_channels, /health")

	case "health":
		b.reply(chatID, fmt.Sprintf("OK. %d scheduled jobs.", b.scheduler.Jobs()))

	case "sendquiz":
		channel := strings.TrimSpace(msg.CommandArguments())
		if channel == "" {
			b.reply(chatID, "Usage: /sendquiz <channel>")
			return
		}
		go func() {
			outcome, err := b.dispatcher.DispatchByTelegramID(ctx, channel)
			if err != nil {
				slog.Error("sendquiz failed", "channel", channel, "error", err)
				b.reply(chatID, fmt.Sprintf("Dispatch failed: %v", err))
				return
			}
			b.reply(chatID, fmt.Sprintf("Sent %d questions to %s (%d skipped).",
				outcome.QuestionsSent, channel, outcome.Skipped))
		}()
		b.reply(chatID, fmt.Sprintf("Dispatching quiz to %s...", channel))

	case "check_questions":
		channel := strings.TrimSpace(msg.CommandArguments())
		if channel == "" {
			b.reply(chatID, "Usage: /check_questions <channel>")
			return
		}
		ch, err := b.store.GetChannelByTelegramID(channel)
		if err != nil {
			b.reply(chatID, fmt.Sprintf("Unknown channel %s", channel))
			return
		}
		count, err := b.store.CountQuestions(ch.ID)
		if err != nil {
			slog.Error("failed to count questions", "channel", channel, "error", err)
			b.reply(chatID, "Database error")
			return
		}
		b.reply(chatID, fmt.Sprintf("%s has %d questions (batch size %d).",
			ch.ChannelName, count, ch.QuestionsPerBatch))

	case "list_channels":
		channels, err := b.store.ListChannels()
		if err != nil {
			slog.Error("failed to list channels", "error", err)
			b.reply(chatID, "Database error")
			return
		}
		if len(channels) == 0 {
			b.reply(chatID, "No channels configured.")
			return
		}
		var sb strings.Builder
		sb.WriteString("Configured channels:\n")
		for _, ch := range channels {
			state := "inactive"
			if ch.Active {
				state = "active"
			}
			fmt.Fprintf(&sb, "• %s (%s) — %s\n", ch.ChannelName, ch.ChannelID, state)
		}
		b.reply(chatID, sb.String())

	case "add_channel", "schedule_quiz":
		b.reply(chatID, "Channels and schedules are managed in the web admin panel.")

	default:
		b.reply(chatID, "Unknown command.")
	}
}

func (b *QuizBot) reply(chatID, text string) {
	if err := b.send(chatID, text); err != nil {
		slog.Error("failed to send reply", "chat", chatID, "error", err)
	}
}
