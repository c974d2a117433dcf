package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

const listingPage = `<html><body>
<div class="story-box"><h4>OpenAI ships new model</h4><p>A fresh release landed today.</p></div>
<div class="story-box"><h4>Anthropic research update</h4><p>Interpretability results published.</p></div>
<div class="story-box"><h4>Meta open-sources a framework</h4></div>
</body></html>`

func TestScrape_ExtractsStories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, testLogger())
	items := s.Scrape(context.Background())

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Title != "OpenAI ships new model" {
		t.Errorf("unexpected first title: %q", items[0].Title)
	}
	if items[1].Description != "Interpretability results published." {
		t.Errorf("unexpected second description: %q", items[1].Description)
	}
	if items[2].Description != "No description" {
		t.Errorf("expected placeholder description for story without paragraph, got %q", items[2].Description)
	}
}

func TestScrape_MissingHeading(t *testing.T) {
	page := `<div class="story-box"><p>Orphan paragraph.</p></div>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, testLogger())
	items := s.Scrape(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "No title" {
		t.Errorf("expected placeholder title, got %q", items[0].Title)
	}
}

func TestScrape_Non200ReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewScraper(srv.URL, testLogger())
	if items := s.Scrape(context.Background()); items != nil {
		t.Errorf("expected nil items on non-200, got %v", items)
	}
}

func TestRender(t *testing.T) {
	items := []Item{
		{Title: "A", Description: "first"},
		{Title: "B", Description: "second"},
	}
	out := Render(items)
	if !strings.Contains(out, "Title: A\nDescription: first") {
		t.Errorf("rendered content missing first item: %q", out)
	}
	if !strings.Contains(out, "Title: B") {
		t.Errorf("rendered content missing second item: %q", out)
	}
	if Render(nil) != "" {
		t.Errorf("expected empty render for no items")
	}
}
