// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package match

import (
	"regexp"
	"strings"

	"github.com/quizcast/quizcast/models"
)

var (
	prefixRe     = regexp.MustCompile(`^Q\d+:\s*`)
	// \w in Go regexps is ASCII-only; spell out the Unicode classes so
	// questions in non-Latin scripts keep their text. \p{M} keeps
	// combining marks (Devanagari vowel signs and the like) attached.
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize maps a displayed poll question to its matching key: the
// leading "Q<digits>: " enumeration prefix is stripped, the text is
// lowercased, everything that is not a word character or whitespace is
// removed, and whitespace runs collapse to single spaces. Idempotent.
func Normalize(text string) string {
	s := prefixRe.ReplaceAllString(text, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonWordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Entry is one indexed question with the channel context needed to
// release its answer.
type Entry struct {
	Question          models.Question
	ChannelTelegramID string
	DiscussionGroupID string
	ChannelName       string
}

// Index is an immutable snapshot of the question bank keyed by
// normalized question text. Build a new one instead of mutating.
type Index struct {
	keys    []string // preserves insertion order for deterministic ties
	entries map[string]Entry
}

// NewIndex builds a snapshot from joined question rows. Later rows with
// the same normalized key replace earlier ones, matching a plain map
// rebuild.
func NewIndex(entries []Entry) *Index {
	idx := &Index{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		key := Normalize(e.Question.QuestionText)
		if key == "" {
			continue
		}
		if _, seen := idx.entries[key]; !seen {
			idx.keys = append(idx.keys, key)
		}
		idx.entries[key] = e
	}
	return idx
}

// Len reports the number of indexed questions.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Find returns the first entry whose key and the query contain one
// another in either direction. Very short keys can false-positive
// against unrelated questions; that looseness is intentional and
// callers get first-encountered order on ties.
func (idx *Index) Find(query string) (Entry, bool) {
	if query == "" {
		return Entry{}, false
	}
	for _, key := range idx.keys {
		if strings.Contains(query, key) || strings.Contains(key, query) {
			return idx.entries[key], true
		}
	}
	return Entry{}, false
}
