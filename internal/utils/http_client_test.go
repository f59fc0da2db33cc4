package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://127.0.0.1:1", time.Second)
	client2 := NewHTTPClient("http://127.0.0.1:1", time.Second)

	if client1.Client == nil || client2.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil")
	}
	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return clients with different *resty.Client instances")
	}
}

func TestNewHTTPClient_BaseURLAndUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/status" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Errorf("expected user agent %q, got %q", userAgent, ua)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	resp, err := client.R().Get("/api/v2/status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode())
	}
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 20*time.Millisecond)
	if _, err := client.R().Get("/"); err == nil {
		t.Fatal("expected timeout error")
	}
}
