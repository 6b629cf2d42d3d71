// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package match maps observed poll text back to stored questions.

# Normalization

Poll question text is normalized before comparison: the "Q<n>:" prefix
added at dispatch time is stripped, the text is lowercased,
punctuation is removed, and whitespace is collapsed. Matching is
symmetric substring containment over normalized keys, so truncated
poll text still finds its question.

# Index and Bank

Index is an immutable snapshot of the question bank keyed by
normalized text; insertion order decides ties. Bank holds the current
Index behind an atomic pointer so the answer bot can reload the bank
while release waits are in flight:

	bank := match.NewBank(st)
	err := bank.Reload()
	entry, ok := bank.Snapshot().Find(match.Normalize(pollText))
*/
package match
