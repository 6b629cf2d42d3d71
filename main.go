package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/quizcast/quizcast/answer"
	"github.com/quizcast/quizcast/bot"
	"github.com/quizcast/quizcast/cliparse"
	"github.com/quizcast/quizcast/db"
	"github.com/quizcast/quizcast/match"
	"github.com/quizcast/quizcast/procman"
	"github.com/quizcast/quizcast/quiz"
	"github.com/quizcast/quizcast/router"
	"github.com/quizcast/quizcast/schedule"
	"github.com/quizcast/quizcast/session"
	"github.com/quizcast/quizcast/store"
	"github.com/quizcast/quizcast/telegram"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env")
	}

	mode := cliparse.ModeServe
	args := os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		mode = args[0]
		args = args[1:]
	}

	cfg, err := cliparse.ParseFlags(mode, args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st := store.New(dbConn)

	switch cfg.Mode {
	case cliparse.ModeServe:
		err = runServe(cfg, st)
	case cliparse.ModeQuizBot:
		err = runQuizBot(cfg, st)
	case cliparse.ModeAnswerBot:
		err = runAnswerBot(cfg, st)
	}
	if err != nil {
		slog.Error("worker exited", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

// runServe starts the admin panel HTTP server.
func runServe(cfg cliparse.Config, st *store.Store) error {
	client, err := telegram.New(cfg.QuizBotToken, cfg.Debug)
	if err != nil {
		return fmt.Errorf("quiz bot client: %w", err)
	}

	sessions := session.NewManager(cfg.AdminPassword, cfg.SessionSecret)
	dispatcher := quiz.NewDispatcher(st, client, quiz.NewLiveRegistry())
	bots := procman.NewRegistry()
	defer bots.StopAll()

	mux := router.NewRouter(st, sessions, dispatcher, bots)
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	slog.Info("Server closed")
	return nil
}

// runQuizBot starts the scheduled quiz dispatch worker.
func runQuizBot(cfg cliparse.Config, st *store.Store) error {
	client, err := telegram.New(cfg.QuizBotToken, cfg.Debug)
	if err != nil {
		return fmt.Errorf("quiz bot client: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	dispatcher := quiz.NewDispatcher(st, client, quiz.NewLiveRegistry())
	scheduler := schedule.New(st, dispatcher, loc)
	quizBot := bot.NewQuizBot(client, st, dispatcher, scheduler, cfg.AdminChatID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = quizBot.Run(ctx)
	if err == context.Canceled {
		slog.Info("quiz bot stopped")
		return nil
	}
	return err
}

// runAnswerBot starts the explanation release worker.
func runAnswerBot(cfg cliparse.Config, st *store.Store) error {
	client, err := telegram.New(cfg.AnswerBotToken, cfg.Debug)
	if err != nil {
		return fmt.Errorf("answer bot client: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	releaser := answer.NewReleaser(match.NewBank(st), client, loc)
	answerBot := bot.NewAnswerBot(client, releaser, cfg.AdminChatID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = answerBot.Run(ctx)
	if err == context.Canceled {
		slog.Info("answer bot stopped")
		return nil
	}
	return err
}
