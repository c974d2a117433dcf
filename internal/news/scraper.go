package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// Item is one scraped headline with its first paragraph.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Scraper extracts AI-news items from a fixed listing page. Each story sits
// in a div.story-box holding an h4 headline and a p description.
type Scraper struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

func NewScraper(url string, log *logrus.Logger) *Scraper {
	return &Scraper{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		log: log,
	}
}

// Scrape fetches the listing page and returns its stories in page order.
// A non-200 response is logged and yields nil; there is no retry.
func (s *Scraper) Scrape(ctx context.Context) []Item {
	req, err := http.NewRequestWithContext(ctx, "GET", s.url, nil)
	if err != nil {
		s.log.WithError(err).Error("[Scraper] failed to create request")
		return nil
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; newsquiz/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.WithError(err).Error("[Scraper] failed to fetch news page")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Errorf("[Scraper] failed to fetch the webpage, status code: %d", resp.StatusCode)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.log.WithError(err).Error("[Scraper] failed to parse HTML")
		return nil
	}

	var items []Item
	doc.Find("div.story-box").Each(func(i int, story *goquery.Selection) {
		title := strings.TrimSpace(story.Find("h4").First().Text())
		if title == "" {
			title = "No title"
		}
		description := strings.TrimSpace(story.Find("p").First().Text())
		if description == "" {
			description = "No description"
		}
		items = append(items, Item{Title: title, Description: description})
	})

	s.log.Infof("[Scraper] scraped %d news items", len(items))
	return items
}

// Render flattens scraped items into the single text blob the quiz generator
// consumes. The digest path already produces such a blob.
func Render(items []Item) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Title: ")
		b.WriteString(item.Title)
		b.WriteString("\nDescription: ")
		b.WriteString(item.Description)
	}
	return b.String()
}
