package everhour

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestGetTaskTimeQuery(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/abc/time" {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("from"); got != "2020-01-01" {
			t.Fatalf("from = %q", got)
		}
		if _, present := r.URL.Query()["to"]; present {
			t.Fatalf("unset bound leaked into query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(TaskTime{Total: 5400})
	}))

	tt, err := c.GetTaskTime(context.Background(), "abc", &Timerange{From: "2020-01-01"})
	if err != nil {
		t.Fatalf("GetTaskTime: %v", err)
	}
	if tt.Total != 5400 {
		t.Fatalf("total = %d", tt.Total)
	}
}

func TestGetTaskEmptyIDStillCallsService(t *testing.T) {
	// An empty string is a valid (if useless) parameter value; the builder
	// only rejects absent or non-string/number values.
	var calledPath string
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledPath = r.URL.Path
		http.Error(w, "task not found", http.StatusNotFound)
	}))

	_, err := c.GetTask(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if calledPath != "/tasks/" {
		t.Fatalf("path = %s", calledPath)
	}
}

func TestDeleteTaskEstimate(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/tasks/t9/estimate" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))

	if err := c.DeleteTaskEstimate(context.Background(), "t9"); err != nil {
		t.Fatalf("DeleteTaskEstimate: %v", err)
	}
}

func TestListProjectTasksExcludeClosed(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("excludeClosed"); got != "true" {
			t.Fatalf("excludeClosed = %q", got)
		}
		json.NewEncoder(w).Encode([]Task{{ID: "t1", Name: "task"}})
	}))

	tasks, err := c.ListProjectTasks(context.Background(), "ev:1", true)
	if err != nil {
		t.Fatalf("ListProjectTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Fatalf("tasks = %+v", tasks)
	}
}
