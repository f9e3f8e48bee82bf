package everhour

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCurrentTimer(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/timers/current" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s", r.Method)
		}
		json.NewEncoder(w).Encode(Timer{Status: TimerStatusActive, Duration: 120})
	}))

	timer, err := c.CurrentTimer(context.Background())
	if err != nil {
		t.Fatalf("CurrentTimer: %v", err)
	}
	if timer.Status != TimerStatusActive || timer.Duration != 120 {
		t.Fatalf("timer = %+v", timer)
	}
}

func TestStartTimerSendsTask(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/timers" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		var req StartTimerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Task != "ev:123" {
			t.Fatalf("task = %q", req.Task)
		}
		json.NewEncoder(w).Encode(Timer{Status: TimerStatusActive})
	}))

	timer, err := c.StartTimer(context.Background(), &StartTimerRequest{Task: "ev:123"})
	if err != nil {
		t.Fatalf("StartTimer: %v", err)
	}
	if timer.Status != TimerStatusActive {
		t.Fatalf("status = %s", timer.Status)
	}
}

func TestStopTimerUsesDelete(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/timers/current" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(Timer{Status: TimerStatusStopped})
	}))

	timer, err := c.StopTimer(context.Background())
	if err != nil {
		t.Fatalf("StopTimer: %v", err)
	}
	if timer.Status != TimerStatusStopped {
		t.Fatalf("status = %s", timer.Status)
	}
}
