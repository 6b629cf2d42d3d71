// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package bot runs the two Telegram worker loops.

# Quiz Bot

The quiz bot owns the dispatch side: it loads the stored schedules
into the cron scheduler and answers admin commands over long polling:

	/sendquiz <channel>        dispatch a quiz batch now
	/check_questions <channel> question count and batch size
	/list_channels             configured channels and state
	/health                    liveness and scheduled job count

# Answer Bot

The answer bot watches for quiz polls posted to channels. Each
observed poll is matched against the question bank and, after the
poll's open window passes, the stored explanation is posted to the
channel's discussion group. Admin commands:

	/reload_questions          rebuild the question bank from the store
	/health                    liveness and bank size

Commands are only honored from the configured admin chat ID; anything
else is logged and dropped.
*/
package bot
