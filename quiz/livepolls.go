// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quiz

import (
	"sync"

	"github.com/quizcast/quizcast/models"
)

// LivePoll is the context kept for a poll while it is open.
type LivePoll struct {
	Question          models.Question
	ChannelTelegramID string
	DiscussionGroupID string
}

// LiveRegistry tracks polls sent during this process's lifetime, keyed
// by the server-issued poll ID. Transient, never persisted.
type LiveRegistry struct {
	mu    sync.Mutex
	polls map[string]LivePoll
}

func NewLiveRegistry() *LiveRegistry {
	return &LiveRegistry{polls: make(map[string]LivePoll)}
}

func (r *LiveRegistry) Register(pollID string, q models.Question, ch models.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[pollID] = LivePoll{
		Question:          q,
		ChannelTelegramID: ch.ChannelID,
		DiscussionGroupID: ch.DiscussionGroupID,
	}
}

func (r *LiveRegistry) Get(pollID string) (LivePoll, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[pollID]
	return p, ok
}

func (r *LiveRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.polls)
}
