package ai

import (
	"context"
	"fmt"
	"strings"
)

const (
	chatModel       = "gpt-4o-mini"
	chatMaxTokens   = 512
	chatTemperature = 0.7

	summarizeInstruction = "Summarize the following text as 4-5 concise bullet points:"
)

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Summarize sends the text to the chat-completion API with a fixed
// bullet-point instruction. A bullet-list answer is reformatted into
// unordered-list markup; anything else comes back unchanged.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	req := chatRequest{
		Model: chatModel,
		Messages: []chatMessage{
			{Role: "user", Content: summarizeInstruction + "\n\n" + text},
		},
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	}

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty chat-completion response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if strings.HasPrefix(content, "-") {
		return bulletsToHTML(content), nil
	}
	return content, nil
}

func bulletsToHTML(s string) string {
	var b strings.Builder
	b.WriteString(`<ul style="padding-left:1.5em;list-style:disc;">`)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(line)
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	return b.String()
}
