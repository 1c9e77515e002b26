package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const (
	ttsModel = "tts-1"
	ttsVoice = "nova"
	ttsSpeed = 1.0
)

type speechRequest struct {
	Model string  `json:"model"`
	Input string  `json:"input"`
	Voice string  `json:"voice"`
	Speed float64 `json:"speed"`
}

// SpeechCache is a flat directory of audio files named by the hex
// digest of their input text. Existence-by-filename is the only lookup;
// entries are never evicted.
type SpeechCache struct {
	dir string
}

func NewSpeechCache(dir string) (*SpeechCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create tts cache dir: %w", err)
	}
	return &SpeechCache{dir: dir}, nil
}

// Digest returns the cache key for the given text.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (s *SpeechCache) path(digest string) string {
	return filepath.Join(s.dir, digest+".mp3")
}

func (s *SpeechCache) Get(digest string) ([]byte, bool) {
	b, err := os.ReadFile(s.path(digest))
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *SpeechCache) Put(digest string, audio []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(digest), audio, 0o644)
}

// Synthesize returns MPEG audio for the text, serving from the disk
// cache when a file for its digest already exists. A cache write
// failure is logged and the audio is still returned from memory.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	digest := Digest(text)
	if audio, ok := c.speech.Get(digest); ok {
		return audio, nil
	}

	req := speechRequest{
		Model: ttsModel,
		Input: text,
		Voice: ttsVoice,
		Speed: ttsSpeed,
	}

	resp, err := c.post(ctx, "/audio/speech", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}

	if err := c.speech.Put(digest, audio); err != nil {
		log.Printf("tts cache write for %s failed: %v", digest, err)
	}
	return audio, nil
}
