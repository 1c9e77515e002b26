package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	if len(cfg.Feeds.URLs) == 0 {
		t.Error("expected default feed URLs")
	}
	if cfg.Schedule.Timezone != "America/New_York" || cfg.Schedule.FetchHour != 7 {
		t.Errorf("schedule = %+v", cfg.Schedule)
	}
	if cfg.AI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.TTS.CacheDir != "tts-cache" {
		t.Errorf("CacheDir = %q", cfg.TTS.CacheDir)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("PORT", "9000")
	t.Setenv("FEED_URLS", " https://a.example/rss , https://b.example/rss ,")
	t.Setenv("FETCH_HOUR", "5")
	t.Setenv("HANDLER_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d", cfg.Server.Port)
	}
	want := []string{"https://a.example/rss", "https://b.example/rss"}
	if len(cfg.Feeds.URLs) != 2 || cfg.Feeds.URLs[0] != want[0] || cfg.Feeds.URLs[1] != want[1] {
		t.Errorf("URLs = %v", cfg.Feeds.URLs)
	}
	if cfg.Schedule.FetchHour != 5 {
		t.Errorf("FetchHour = %d", cfg.Schedule.FetchHour)
	}
	if cfg.Server.HandlerTimeout != 30*time.Second {
		t.Errorf("HandlerTimeout = %s", cfg.Server.HandlerTimeout)
	}
}

func TestLoadRejectsBadFetchHour(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("FETCH_HOUR", "24")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range FETCH_HOUR")
	}
}
