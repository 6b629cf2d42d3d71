// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package quiz dispatches quiz batches to channels as timed polls.

# Dispatch Run

One Dispatch call performs a full quiz run for a channel:

 1. Select the channel's batch of least-used questions.
 2. Post an announcement message (or a "no questions" notice).
 3. Send each question as a quiz poll with a 300 second open period,
    pausing 10 seconds between polls.
 4. Post a completion message.
 5. Record last_quiz_sent and a quiz_history row.

A poll that fails to send is logged and skipped; the run continues
with the remaining questions. Pacing honors context cancellation.

# Live Polls

LiveRegistry tracks polls from the current process by the poll ID the
API returned, mapping each back to its question and channel.
*/
package quiz
