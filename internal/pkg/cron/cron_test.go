package cron

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterAndList(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:        "refresh",
		Description: "refresh things",
		Interval:    time.Minute,
		Fn:          func(ctx context.Context) error { return nil },
	})

	items := s.List()
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Name != "refresh" {
		t.Errorf("name = %q", items[0].Name)
	}
	if items[0].Status != StatusIdle {
		t.Errorf("status = %q, want %q", items[0].Status, StatusIdle)
	}
	if items[0].LastRunAt != nil {
		t.Error("LastRunAt should be nil before first run")
	}
}

func TestExecuteRecordsOutcome(t *testing.T) {
	s := New()
	calls := 0
	s.Register(Job{
		Name:     "flaky",
		Interval: time.Minute,
		Fn: func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return errors.New("boom")
			}
			return nil
		},
	})
	js := s.jobs["flaky"]

	s.execute(context.Background(), js)
	result, err := s.GetTask("flaky")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if result.Status != StatusReject {
		t.Errorf("status = %q, want %q", result.Status, StatusReject)
	}
	if result.Message != "boom" {
		t.Errorf("message = %q", result.Message)
	}

	s.execute(context.Background(), js)
	result, _ = s.GetTask("flaky")
	if result.Status != StatusFulfill {
		t.Errorf("status = %q, want %q", result.Status, StatusFulfill)
	}
	if result.Message != "" {
		t.Errorf("message = %q, want empty", result.Message)
	}
}

func TestUnknownJob(t *testing.T) {
	s := New()
	if err := s.Run(context.Background(), "nope"); err == nil {
		t.Error("Run should fail for unknown job")
	}
	if _, err := s.GetTask("nope"); err == nil {
		t.Error("GetTask should fail for unknown job")
	}
}
