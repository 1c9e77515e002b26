package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"news-backend/internal/ai"
	"news-backend/internal/feed"

	"github.com/gin-gonic/gin"
)

type NewsService interface {
	EnsureFresh(ctx context.Context)
	Refresh(ctx context.Context) int
	Snapshot() ([]feed.Article, string)
	Clear()
}

type AIService interface {
	Summarize(ctx context.Context, text string) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Handlers struct {
	news NewsService
	ai   AIService
}

func NewHandlers(news NewsService, aiSvc AIService) *Handlers {
	return &Handlers{
		news: news,
		ai:   aiSvc,
	}
}

func (h *Handlers) GetNews(c *gin.Context) {
	h.news.EnsureFresh(c.Request.Context())

	articles, lastFetch := h.news.Snapshot()
	if articles == nil {
		articles = []feed.Article{}
	}

	status := "cached"
	if len(articles) == 0 {
		status = "empty"
	}

	// The last-fetch marker is kept internally even when a cycle yields
	// nothing, so the once-per-day check still holds; an empty cache
	// presents as never fetched.
	var last any
	if lastFetch != "" && len(articles) > 0 {
		last = lastFetch
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":    articles,
		"lastFetch":   last,
		"cacheStatus": status,
	})
}

func (h *Handlers) Summarize(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.ai.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyText) {
			JSONError(c, http.StatusBadRequest, "text is required")
			return
		}
		log.Printf("summarize failed: %v", err)
		var ue *ai.UpstreamError
		if errors.As(err, &ue) {
			JSONErrorWithDetails(c, http.StatusInternalServerError, "summarization failed", ue.Body)
			return
		}
		JSONErrorWithDetails(c, http.StatusInternalServerError, "summarization failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *Handlers) TTS(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	audio, err := h.ai.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyText) {
			JSONError(c, http.StatusBadRequest, "text is required")
			return
		}
		log.Printf("tts failed: %v", err)
		var ue *ai.UpstreamError
		if errors.As(err, &ue) {
			JSONErrorWithDetails(c, ue.Status, "speech synthesis failed", ue.Body)
			return
		}
		JSONErrorWithDetails(c, http.StatusInternalServerError, "speech synthesis failed", err.Error())
		return
	}

	c.Header("Content-Length", strconv.Itoa(len(audio)))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (h *Handlers) ClearCache(c *gin.Context) {
	h.news.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared"})
}

func (h *Handlers) FetchNow(c *gin.Context) {
	count := h.news.Refresh(c.Request.Context())
	_, lastFetch := h.news.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"message":       "fetch complete",
		"articlesCount": count,
		"lastFetch":     lastFetch,
	})
}
