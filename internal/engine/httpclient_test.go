package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewBrowserClient(t *testing.T) {
	bc, err := NewBrowserClient()
	if err != nil {
		t.Fatalf("NewBrowserClient() error = %v", err)
	}
	if bc == nil {
		t.Fatal("NewBrowserClient() returned nil")
	}
	if bc.client == nil {
		t.Fatal("BrowserClient.client is nil")
	}
}

func TestGetViaBrowserClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "browser-agent" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte("0123456789"))
	}))
	defer srv.Close()

	bc, err := NewBrowserClient()
	if err != nil {
		t.Fatalf("NewBrowserClient() error = %v", err)
	}
	Init(Config{BrowserClient: bc})

	body, status, err := Get(context.Background(), srv.URL, map[string]string{"User-Agent": "browser-agent"}, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if string(body) != "0123" {
		t.Errorf("body = %q", body)
	}
}

func TestBrowserClientTransportErrorCounted(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	bc, err := NewBrowserClient()
	if err != nil {
		t.Fatalf("NewBrowserClient() error = %v", err)
	}
	Init(Config{BrowserClient: bc})

	before := GetMetrics()["fetch_errors"]
	if _, _, err := Get(context.Background(), srv.URL, nil, 0); err == nil {
		t.Fatal("expected error against closed server")
	}
	if got := GetMetrics()["fetch_errors"]; got != before+1 {
		t.Errorf("fetch_errors = %d, want %d", got, before+1)
	}
}
