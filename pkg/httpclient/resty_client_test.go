package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientFollowsRedirectsAndSetsHeaders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/people/1", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/people/1/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/people/1/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("User-Agent = %q", got)
		}
		if got := r.Header.Get("X-Trace"); got != "abc" {
			t.Errorf("X-Trace = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Luke Skywalker"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewRestyClient(Options{Timeout: 2 * time.Second, UserAgent: "test-agent"})
	resp, err := client.Get(context.Background(), srv.URL+"/people/1", map[string]string{"X-Trace": "abc"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !resp.IsSuccess() || resp.StatusCode() != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.StatusCode())
	}
	if string(resp.Body()) != `{"name":"Luke Skywalker"}` {
		t.Fatalf("unexpected body %q", resp.Body())
	}
}

func TestRestyClientReturnsNon2xxWithoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	resp, err := NewRestyClient(Options{}).Get(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.IsSuccess() {
		t.Fatalf("expected non-success response")
	}
	if resp.StatusCode() != http.StatusNotFound {
		t.Fatalf("StatusCode = %d", resp.StatusCode())
	}
}

func TestRestyClientReturnsTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewRestyClient(Options{Timeout: time.Second}).Get(context.Background(), url, nil); err == nil {
		t.Fatalf("expected error for closed server")
	}
}
