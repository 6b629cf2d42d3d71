// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package procman

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"github.com/quizcast/quizcast/models"
)

var ErrUnknownBot = errors.New("unknown bot")

// Starter abstracts process launch so tests can substitute a fake.
type Starter interface {
	Start() error
	Kill() error
	Wait() error
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Start() error { return p.cmd.Start() }
func (p *execProcess) Kill() error  { return p.cmd.Process.Kill() }
func (p *execProcess) Wait() error  { return p.cmd.Wait() }

// Registry tracks the quiz and answer bot worker processes started
// from the admin panel. Each bot runs as a child process invoking
// this same binary with the bot's subcommand, so the workers share
// the server's configuration environment.
type Registry struct {
	mu      sync.Mutex
	running map[string]Starter

	// newProcess is swapped out in tests.
	newProcess func(bot string) Starter
}

func NewRegistry() *Registry {
	return &Registry{
		running: make(map[string]Starter),
		newProcess: func(bot string) Starter {
			cmd := exec.Command(os.Args[0], subcommand(bot))
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			cmd.Env = os.Environ()
			return &execProcess{cmd: cmd}
		},
	}
}

func subcommand(bot string) string {
	if bot == models.BotAnswer {
		return "answerbot"
	}
	return "quizbot"
}

// Start launches the named bot. Starting a bot that is already
// running is a no-op.
func (r *Registry) Start(bot string) error {
	if bot != models.BotQuiz && bot != models.BotAnswer {
		return fmt.Errorf("%w: %s", ErrUnknownBot, bot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.running[bot]; ok {
		slog.Info("bot already running", "bot", bot)
		return nil
	}

	proc := r.newProcess(bot)
	if err := proc.Start(); err != nil {
		return fmt.Errorf("failed to start %s bot: %w", bot, err)
	}
	r.running[bot] = proc

	// Reap the child when it exits on its own.
	go func() {
		err := proc.Wait()
		r.mu.Lock()
		if r.running[bot] == proc {
			delete(r.running, bot)
		}
		r.mu.Unlock()
		slog.Info("bot process exited", "bot", bot, "error", err)
	}()

	slog.Info("bot started", "bot", bot)
	return nil
}

// Stop kills the named bot's process. Stopping a bot that is not
// running is a no-op.
func (r *Registry) Stop(bot string) error {
	if bot != models.BotQuiz && bot != models.BotAnswer {
		return fmt.Errorf("%w: %s", ErrUnknownBot, bot)
	}

	r.mu.Lock()
	proc, ok := r.running[bot]
	delete(r.running, bot)
	r.mu.Unlock()

	if !ok {
		slog.Info("bot already stopped", "bot", bot)
		return nil
	}
	if err := proc.Kill(); err != nil {
		return fmt.Errorf("failed to stop %s bot: %w", bot, err)
	}
	slog.Info("bot stopped", "bot", bot)
	return nil
}

// Status reports the run state of both bots.
func (r *Registry) Status() models.BotStatusResponse {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.BotStatusResponse{
		QuizBot:   state(r.running[models.BotQuiz] != nil),
		AnswerBot: state(r.running[models.BotAnswer] != nil),
	}
}

// StopAll kills every running bot, for server shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	procs := make(map[string]Starter, len(r.running))
	for bot, proc := range r.running {
		procs[bot] = proc
	}
	r.running = make(map[string]Starter)
	r.mu.Unlock()

	for bot, proc := range procs {
		if err := proc.Kill(); err != nil {
			slog.Error("failed to stop bot on shutdown", "bot", bot, "error", err)
		}
	}
}

func state(running bool) string {
	if running {
		return models.StateRunning
	}
	return models.StateStopped
}
