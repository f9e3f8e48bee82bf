package everhour

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestDeleteTimeCarriesPayload(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/time" {
			t.Fatalf("%s %s", r.Method, r.URL.Path)
		}
		var req TimeRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Task != "t1" || req.User != 7 || req.Date != "2024-03-01" {
			t.Fatalf("request = %+v", req)
		}
		w.Write([]byte(`{}`))
	}))

	err := c.DeleteTime(context.Background(), &TimeRecordRequest{
		Task: "t1",
		User: 7,
		Date: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("DeleteTime: %v", err)
	}
}

func TestListTeamTimePaging(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("from") != "2024-01-01" || q.Get("to") != "2024-01-31" {
			t.Fatalf("bounds missing: %s", r.URL.RawQuery)
		}
		if q.Get("limit") != "100" || q.Get("page") != "2" {
			t.Fatalf("paging missing: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]TimeRecord{{ID: 1, Date: "2024-01-02", User: 7, Time: 3600}})
	}))

	records, err := c.ListTeamTime(context.Background(), &ListTimeOptions{
		From:  "2024-01-01",
		To:    "2024-01-31",
		Limit: 100,
		Page:  2,
	})
	if err != nil {
		t.Fatalf("ListTeamTime: %v", err)
	}
	if len(records) != 1 || records[0].Time != 3600 {
		t.Fatalf("records = %+v", records)
	}
}

func TestListTeamTimeNilOptions(t *testing.T) {
	c, _ := newServerClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]TimeRecord{})
	}))

	if _, err := c.ListTeamTime(context.Background(), nil); err != nil {
		t.Fatalf("ListTeamTime: %v", err)
	}
}
