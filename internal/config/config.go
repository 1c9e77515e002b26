package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Feeds    FeedsConfig
	AI       AIConfig
	TTS      TTSConfig
	Schedule ScheduleConfig
}

type ServerConfig struct {
	Port           int
	HandlerTimeout time.Duration
}

type FeedsConfig struct {
	URLs []string
}

type AIConfig struct {
	APIKey  string
	BaseURL string
}

type TTSConfig struct {
	CacheDir string
}

type ScheduleConfig struct {
	Timezone  string
	FetchHour int
}

var defaultFeedURLs = []string{
	"https://feeds.bbci.co.uk/news/rss.xml",
	"https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml",
	"https://feeds.npr.org/1001/rss.xml",
	"https://www.theguardian.com/world/rss",
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("missing env OPENAI_API_KEY")
	}

	urlsStr := GetEnv("FEED_URLS", strings.Join(defaultFeedURLs, ",")).(string)
	urls := parseURLs(urlsStr)
	if len(urls) == 0 {
		return nil, fmt.Errorf("no valid feed URLs found in FEED_URLS")
	}

	fetchHour := GetEnv("FETCH_HOUR", 7).(int)
	if fetchHour < 0 || fetchHour > 23 {
		return nil, fmt.Errorf("FETCH_HOUR must be between 0 and 23, got %d", fetchHour)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           GetEnv("PORT", 8080).(int),
			HandlerTimeout: GetEnv("HANDLER_TIMEOUT", 60*time.Second).(time.Duration),
		},
		Feeds: FeedsConfig{
			URLs: urls,
		},
		AI: AIConfig{
			APIKey:  apiKey,
			BaseURL: GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1").(string),
		},
		TTS: TTSConfig{
			CacheDir: GetEnv("TTS_CACHE_DIR", "tts-cache").(string),
		},
		Schedule: ScheduleConfig{
			Timezone:  GetEnv("FETCH_TIMEZONE", "America/New_York").(string),
			FetchHour: fetchHour,
		},
	}

	return cfg, nil
}

func parseURLs(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func GetEnv(key string, defaultValue any) any {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	switch def := defaultValue.(type) {
	case string:
		return value
	case int:
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		return def
	case bool:
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
		return def
	case time.Duration:
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		return def
	default:
		panic(fmt.Sprintf("unsupported type %T", defaultValue))
	}
}
