// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package match

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/quizcast/quizcast/store"
)

// Bank holds the live question index behind an atomic pointer. Reload
// builds a whole new snapshot and swaps it in; readers never observe a
// partially built index.
type Bank struct {
	store   *store.Store
	current atomic.Pointer[Index]
}

func NewBank(s *store.Store) *Bank {
	b := &Bank{store: s}
	b.current.Store(NewIndex(nil))
	return b
}

// Reload rebuilds the index wholesale from all questions of active
// channels and swaps it in.
func (b *Bank) Reload() error {
	rows, err := b.store.ActiveQuestionRows()
	if err != nil {
		return fmt.Errorf("failed to reload question bank: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			Question:          r.Question,
			ChannelTelegramID: r.ChannelTelegramID,
			DiscussionGroupID: r.DiscussionGroupID,
			ChannelName:       r.ChannelName,
		})
	}

	idx := NewIndex(entries)
	b.current.Store(idx)
	slog.Info("question bank reloaded", "questions", idx.Len())
	return nil
}

// Snapshot returns the current index. The returned index is immutable.
func (b *Bank) Snapshot() *Index {
	return b.current.Load()
}
