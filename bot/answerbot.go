// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/quizcast/quizcast/answer"
	"github.com/quizcast/quizcast/telegram"
)

// AnswerBot watches for quiz polls appearing in channels and hands
// each one to the releaser, which posts the explanation to the paired
// discussion group after the poll closes.
type AnswerBot struct {
	client      *telegram.Client
	releaser    *answer.Releaser
	adminChatID int64
}

func NewAnswerBot(client *telegram.Client, r *answer.Releaser, adminChatID int64) *AnswerBot {
	return &AnswerBot{client: client, releaser: r, adminChatID: adminChatID}
}

// Run polls for updates until ctx is cancelled. Each observed poll is
// handled on its own goroutine so overlapping release waits don't
// block each other.
func (b *AnswerBot) Run(ctx context.Context) error {
	if err := b.releaser.Reload(); err != nil {
		return fmt.Errorf("failed to load question bank: %w", err)
	}
	slog.Info("answer bot started", "questions", b.releaser.Questions())

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
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *AnswerBot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	// Polls land as channel posts; commands come as direct messages.
	if post := update.ChannelPost; post != nil && post.Poll != nil {
		b.observePoll(ctx, post.Poll.Question)
		return
	}
	msg := update.Message
	if msg == nil {
		return
	}
	if msg.Poll != nil {
		b.observePoll(ctx, msg.Poll.Question)
		return
	}
	if msg.IsCommand() {
		b.handleCommand(msg)
	}
}

func (b *AnswerBot) observePoll(ctx context.Context, question string) {
	slog.Info("poll observed", "question", question)
	go func() {
		if err := b.releaser.HandlePoll(ctx, question); err != nil {
			slog.Debug("poll not released", "question", question, "error", err)
		}
	}()
}

func (b *AnswerBot) handleCommand(msg *tgbotapi.Message) {
	if msg.From == nil || msg.From.ID != b.adminChatID {
		slog.Warn("ignoring command from non-admin", "from", msg.From, "command", msg.Command())
		return
	}
	chatID := fmt.Sprint(msg.Chat.ID)

	switch msg.Command() {
	case "start":
		b.reply(chatID, "Answer bot is running. Commands: /reload_questions, /health")

	case "health":
		b.reply(chatID, fmt.Sprintf("OK. %d questions loaded.", b.releaser.Questions()))

	case "reload_questions":
		if err := b.releaser.Reload(); err != nil {
			slog.Error("failed to reload questions", "error", err)
			b.reply(chatID, "Reload failed.")
			return
		}
		b.reply(chatID, fmt.Sprintf("Reloaded. %d questions in bank.", b.releaser.Questions()))

	default:
		b.reply(chatID, "Unknown command.")
	}
}

func (b *AnswerBot) reply(chatID, text string) {
	if err := b.client.SendMessage(chatID, text); err != nil {
		slog.Error("failed to send reply", "chat", chatID, "error", err)
	}
}
