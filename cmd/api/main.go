package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"news-backend/internal/ai"
	"news-backend/internal/api"
	"news-backend/internal/config"
	"news-backend/internal/feed"
	"news-backend/internal/news"
)

type app struct {
	config   *config.Config
	news     *news.Service
	aiClient *ai.Client
	handlers *api.Handlers
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	schedule, err := news.NewSchedule(cfg.Schedule.Timezone, cfg.Schedule.FetchHour)
	if err != nil {
		log.Fatal(err)
	}

	svc := news.NewService(cfg.Feeds.URLs, feed.New(), schedule)

	speechCache, err := ai.NewSpeechCache(cfg.TTS.CacheDir)
	if err != nil {
		log.Fatal(err)
	}
	aiClient := ai.New(cfg.AI, speechCache)

	app := &app{
		config:   cfg,
		news:     svc,
		aiClient: aiClient,
		handlers: api.NewHandlers(svc, aiClient),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go svc.Run(ctx)

	log.Printf("listening on :%d (feeds=%d, tts cache=%s)", cfg.Server.Port, len(cfg.Feeds.URLs), cfg.TTS.CacheDir)

	if err := app.serve(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Printf("server stopped")
}
