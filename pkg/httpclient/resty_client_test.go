package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientDo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("method = %s", r.Method)
		}
		if got := r.Header.Get("X-Api-Key"); got != "k" {
			t.Fatalf("X-Api-Key = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"a":1}` {
			t.Fatalf("body = %q", body)
		}
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Do(context.Background(), http.MethodPut, srv.URL, map[string]string{"X-Api-Key": "k"}, []byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusAccepted {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if string(resp.Body()) != "ok" {
		t.Fatalf("body = %q", resp.Body())
	}
}

func TestRestyClientDoWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Fatalf("expected no body, got %q", body)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Do(context.Background(), http.MethodGet, srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode())
	}
}
