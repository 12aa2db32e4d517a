package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNotifySendsMessage(t *testing.T) {
	var gotBody notifyPayload
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if err := c.Notify(context.Background(), "New feedback added for course INFS605: nice"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if gotBody.Message != "New feedback added for course INFS605: nice" {
		t.Fatalf("unexpected message %q", gotBody.Message)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type %q", gotContentType)
	}
}

func TestNotifyNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if err := c.Notify(context.Background(), "msg"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestNotifyUnreachableIsError(t *testing.T) {
	c := New("http://127.0.0.1:1/notify", time.Second)
	if err := c.Notify(context.Background(), "msg"); err == nil {
		t.Fatal("expected error on unreachable sink")
	}
}

func TestNotifyTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 50*time.Millisecond)
	start := time.Now()
	err := c.Notify(context.Background(), "msg")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Fatalf("timeout did not bound the call: took %v", elapsed)
	}
}
