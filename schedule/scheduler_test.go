// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schedule

import (
	"testing"
	"time"

	"github.com/quizcast/quizcast/models"
	"github.com/quizcast/quizcast/quiz"
	"github.com/quizcast/quizcast/store"
	"github.com/quizcast/quizcast/testutil"
)

func TestCronSpec(t *testing.T) {
	tests := []struct {
		name string
		time string
		days string
		want string
	}{
		{"single day", "09:30", "0", "30 9 * * 1"},       // stored Monday -> cron 1
		{"saturday wraps", "18:05", "5", "5 18 * * 6"},   // stored Saturday -> cron 6
		{"sunday wraps to zero", "07:00", "6", "0 7 * * 0"},
		{"multiple days", "21:15", "0,2,4", "15 21 * * 1,3,5"},
		{"spaces tolerated", "10:00", "0, 1", "0 10 * * 1,2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CronSpec(tt.time, tt.days)
			if err != nil {
				t.Fatalf("CronSpec() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CronSpec(%q, %q) = %q, want %q", tt.time, tt.days, got, tt.want)
			}
		})
	}
}

func TestCronSpecRejects(t *testing.T) {
	tests := []struct {
		name string
		time string
		days string
	}{
		{"no colon", "0930", "0"},
		{"hour out of range", "24:00", "0"},
		{"minute out of range", "10:60", "0"},
		{"non-numeric", "aa:bb", "0"},
		{"weekday out of range", "10:00", "7"},
		{"weekday negative", "10:00", "-1"},
		{"empty days", "10:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CronSpec(tt.time, tt.days); err == nil {
				t.Errorf("CronSpec(%q, %q) should fail", tt.time, tt.days)
			}
		})
	}
}

func TestRegisterReplacesByScheduleID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	sched := New(s, quiz.NewDispatcher(s, nil, quiz.NewLiveRegistry()), time.UTC)

	sc := models.Schedule{ID: 1, ChannelID: 1, ScheduleTime: "09:00", DaysOfWeek: "0"}
	if err := sched.Register(sc); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if sched.Jobs() != 1 {
		t.Fatalf("jobs = %d, want 1", sched.Jobs())
	}

	// Same ID again replaces, different ID adds
	sc.ScheduleTime = "10:00"
	if err := sched.Register(sc); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if sched.Jobs() != 1 {
		t.Errorf("jobs after re-register = %d, want 1", sched.Jobs())
	}

	sc2 := models.Schedule{ID: 2, ChannelID: 1, ScheduleTime: "11:00", DaysOfWeek: "1,2"}
	if err := sched.Register(sc2); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if sched.Jobs() != 2 {
		t.Errorf("jobs = %d, want 2", sched.Jobs())
	}
}

func TestLoadFromStore(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	s := store.New(conn)
	chID := testutil.CreateTestChannel(t, conn, models.Channel{ChannelID: "@sched"})
	testutil.AddTestSchedule(t, conn, chID, "09:30", "0,2")
	testutil.AddTestSchedule(t, conn, chID, "bad-time", "0") // skipped, not fatal

	sched := New(s, quiz.NewDispatcher(s, nil, quiz.NewLiveRegistry()), time.UTC)
	if err := sched.LoadFromStore(); err != nil {
		t.Fatalf("LoadFromStore() error = %v", err)
	}
	if sched.Jobs() != 1 {
		t.Errorf("jobs = %d, want 1 (bad row skipped)", sched.Jobs())
	}
}
