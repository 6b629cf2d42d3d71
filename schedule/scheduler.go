// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package schedule registers recurring quiz triggers from the schedules
// table onto a cron runner.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/quiz"
	"github.com/quizcast/quizcast/store"
)

// Scheduler owns one cron entry per active schedule row. Registering a
// schedule ID again replaces its previous entry.
type Scheduler struct {
	store      *store.Store
	dispatcher *quiz.Dispatcher
	cron       *cron.Cron

	mu      sync.Mutex
	entries map[int64]cron.EntryID
}

func New(s *store.Store, d *quiz.Dispatcher, loc *time.Location) *Scheduler {
	return &Scheduler{
		store:      s,
		dispatcher: d,
		cron:       cron.New(cron.WithLocation(loc)),
		entries:    make(map[int64]cron.EntryID),
	}
}

// LoadFromStore registers every active schedule. A schedule that fails
// to register is logged and skipped so one bad row cannot block the rest.
func (s *Scheduler) LoadFromStore() error {
	schedules, err := s.store.ActiveSchedules()
	if err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	loaded := 0
	for _, sc := range schedules {
		if err := s.Register(sc); err != nil {
			slog.Error("failed to register schedule", "schedule", sc.ID, "error", err)
			continue
		}
		loaded++
	}
	slog.Info("schedules loaded", "count", loaded)
	return nil
}

// Register adds (or replaces) the cron entry for one schedule. The
// channel is resolved at fire time so admin edits apply without a
// restart.
func (s *Scheduler) Register(sc models.Schedule) error {
	spec, err := CronSpec(sc.ScheduleTime, sc.DaysOfWeek)
	if err != nil {
		return err
	}

	channelID := sc.ChannelID
	entryID, err := s.cron.AddFunc(spec, func() {
		channel, err := s.store.GetChannel(channelID)
		if err != nil {
			slog.Error("scheduled dispatch: channel lookup failed", "channel", channelID, "error", err)
			return
		}
		slog.Info("scheduled quiz firing", "channel", channel.ChannelID)
		if _, err := s.dispatcher.Dispatch(context.Background(), channel); err != nil {
			slog.Error("scheduled dispatch failed", "channel", channel.ChannelID, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron entry: %w", err)
	}

	s.mu.Lock()
	if old, ok := s.entries[sc.ID]; ok {
		s.cron.Remove(old)
	}
	s.entries[sc.ID] = entryID
	s.mu.Unlock()

	slog.Info("schedule registered", "schedule", sc.ID, "spec", spec)
	return nil
}

// Start begins firing triggers.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops the triggers. In-flight dispatches keep running.
func (s *Scheduler) Stop() { s.cron.Stop() }

// Jobs reports the number of registered triggers.
func (s *Scheduler) Jobs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// CronSpec converts a stored "HH:MM" time and csv weekday set into a
// five-field cron spec. Stored weekdays use 0=Monday; cron uses
// 0=Sunday, so each day shifts by one.
func CronSpec(timeOfDay, daysOfWeek string) (string, error) {
	parts := strings.Split(timeOfDay, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid schedule time %q", timeOfDay)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeOfDay)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeOfDay)
	}

	var cronDays []string
	for _, d := range strings.Split(daysOfWeek, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(d))
		if err != nil || day < 0 || day > 6 {
			return "", fmt.Errorf("invalid weekday %q", d)
		}
		cronDays = append(cronDays, strconv.Itoa((day+1)%7))
	}
	if len(cronDays) == 0 {
		return "", fmt.Errorf("empty weekday set")
	}

	return fmt.Sprintf("%d %d * * %s", minute, hour, strings.Join(cronDays, ",")), nil
}
