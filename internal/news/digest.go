package news

import (
	"context"
	"fmt"

	"newsquiz/internal/llm"
)

// Digest asks an online-search model for categorized AI-news highlights.
// The pipeline currently prefers the scraper; this path stays wired for when
// the listing page changes shape.
type Digest struct {
	client *llm.Client
}

func NewDigest(client *llm.Client) *Digest {
	return &Digest{client: client}
}

// Fetch returns the model's raw text summary for the given date label.
// Errors propagate to the caller.
func (d *Digest) Fetch(ctx context.Context, date string) (string, error) {
	prompt := fmt.Sprintf(`As of %s, what are the latest major developments in:
1. New AI model releases from companies like OpenAI, Anthropic, Google, Meta
2. Updates to popular AI tools and platforms (ChatGPT, Claude, Gemini, etc)
3. New AI developer tools and frameworks
4. Top trending AI repositories on GitHub this week (focus on new tools, models, frameworks)

Focus on concrete releases, updates and trending projects. Provide links where relevant. Skip speculation or minor news.`, date)

	text, err := d.client.ChatCompletion(ctx, []llm.Message{{Role: "user", Content: prompt}}, 0.2)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news digest: %w", err)
	}
	return text, nil
}
