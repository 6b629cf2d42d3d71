// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data access layer over the relational schema.

# Usage

Store wraps an open *sql.DB and works against both supported drivers,
since every query sticks to $N placeholders and shared syntax:

	st := store.New(conn)
	channels, err := st.ListChannels()

# Errors

Lookups of missing rows return ErrNotFound. Creating a channel whose
external channel_id is already registered returns ErrDuplicateChannel.
Both are sentinel values for errors.Is checks in handlers.

# Question Selection

QuestionsForDispatch picks the batch for a quiz run: least-used first
(used_count ascending), random among ties, limited to the channel's
batch size. IncrementUsage bumps used_count after a successful send so
rotation stays fair.

# Cascading Deletes

DeleteChannel removes the channel's questions, schedules, and history
in one transaction before the channel row itself.
*/
package store
