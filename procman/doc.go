// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package procman supervises the quiz and answer bot worker processes.

The admin panel starts and stops each bot on demand:

	registry := procman.NewRegistry()
	err := registry.Start(models.BotQuiz)
	err = registry.Stop(models.BotQuiz)
	status := registry.Status()

A started bot is a child process running this same binary with the
bot's subcommand (quizbot or answerbot), inheriting the server's
environment so it picks up the same database and token configuration.
Start and Stop are idempotent. A worker that exits on its own is
reaped and reported as stopped.
*/
package procman
