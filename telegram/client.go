// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package telegram wraps the Bot API client used to reach channels and
// discussion groups.
package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client sends messages and quiz polls to chats addressed by their
// external identifier ("@username" or a numeric chat ID).
type Client struct {
	API *tgbotapi.BotAPI
}

func New(token string, debug bool) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}
	api.Debug = debug
	return &Client{API: api}, nil
}

// PollParams describes one quiz-type poll.
type PollParams struct {
	Question      string
	Options       [4]string
	CorrectOption int
	Explanation   string
	OpenPeriod    int // seconds
}

// SendMessage sends a plain text message.
func (c *Client) SendMessage(chatID, text string) error {
	msg := tgbotapi.NewMessage(0, text)
	applyChatRef(&msg.BaseChat, chatID)
	if _, err := c.API.Send(msg); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", chatID, err)
	}
	return nil
}

// SendQuizPoll sends a timed single-answer quiz poll and returns the
// server-issued poll identifier.
func (c *Client) SendQuizPoll(chatID string, p PollParams) (string, error) {
	poll := tgbotapi.NewPoll(0, p.Question, p.Options[0], p.Options[1], p.Options[2], p.Options[3])
	applyChatRef(&poll.BaseChat, chatID)
	poll.Type = "quiz"
	poll.CorrectOptionID = int64(p.CorrectOption)
	// Channel polls must be anonymous.
	poll.IsAnonymous = true
	poll.Explanation = p.Explanation
	poll.OpenPeriod = p.OpenPeriod

	sent, err := c.API.Send(poll)
	if err != nil {
		return "", fmt.Errorf("failed to send poll to %s: %w", chatID, err)
	}
	if sent.Poll == nil {
		return "", fmt.Errorf("no poll in response from %s", chatID)
	}
	return sent.Poll.ID, nil
}

// applyChatRef routes "@username" identifiers through ChannelUsername
// and numeric identifiers through ChatID.
func applyChatRef(base *tgbotapi.BaseChat, chatID string) {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		base.ChatID = id
		return
	}
	base.ChannelUsername = chatID
}
