package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"news-backend/internal/config"
)

func TestDigest(t *testing.T) {
	a := Digest("hello")
	b := Digest("hello")
	c := Digest("world")

	if a != b {
		t.Error("same text should produce the same digest")
	}
	if a == c {
		t.Error("different text should produce different digests")
	}
	if len(a) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(a))
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream should not be called for empty text")
	})

	if _, err := c.Synthesize(context.Background(), ""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("error = %v, want ErrEmptyText", err)
	}
}

func TestSynthesizeCachesAudio(t *testing.T) {
	audio := []byte("fake mpeg bytes")
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/audio/speech" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req speechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Model == "" || req.Voice == "" || req.Speed == 0 {
			t.Errorf("expected fixed voice parameters, got %+v", req)
		}
		w.Write(audio)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	speech, err := NewSpeechCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	c := New(config.AIConfig{APIKey: "test-key", BaseURL: srv.URL}, speech)

	first, err := c.Synthesize(context.Background(), "read this aloud")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls)
	}
	if !bytes.Equal(first, audio) {
		t.Error("first response does not match upstream audio")
	}

	cacheFile := filepath.Join(dir, Digest("read this aloud")+".mp3")
	if _, err := os.Stat(cacheFile); err != nil {
		t.Fatalf("expected cache file %s: %v", cacheFile, err)
	}

	second, err := c.Synthesize(context.Background(), "read this aloud")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("second call should hit the cache, upstream calls = %d", calls)
	}
	if !bytes.Equal(second, first) {
		t.Error("cached audio differs from the original response")
	}
}

func TestSynthesizeUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	})

	_, err := c.Synthesize(context.Background(), "some text")
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusTooManyRequests {
		t.Errorf("Status = %d", ue.Status)
	}
	if ue.Body != "rate limited" {
		t.Errorf("Body = %q", ue.Body)
	}
}

func TestSpeechCachePutGet(t *testing.T) {
	speech, err := NewSpeechCache(filepath.Join(t.TempDir(), "nested", "cache"))
	if err != nil {
		t.Fatal(err)
	}

	digest := Digest("some text")
	if _, ok := speech.Get(digest); ok {
		t.Fatal("expected miss for unknown digest")
	}

	if err := speech.Put(digest, []byte("audio")); err != nil {
		t.Fatal(err)
	}
	got, ok := speech.Get(digest)
	if !ok {
		t.Fatal("expected hit after Put")
	}
	if string(got) != "audio" {
		t.Errorf("Get = %q", got)
	}
}
