package wellfound

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

const defaultBaseURL = "https://wellfound.com"

type Config struct {
	BaseURL string // override for tests; empty means the public site
}

// Scraper reads the Wellfound remote search page for a term. Wellfound is a
// startup board with no stable card classes, so the hook is any anchor whose
// href contains /jobs/. The same posting link appears several times per card;
// a per-page seen set collapses those before they leave the adapter.
type Scraper struct {
	cfg     Config
	fetcher *util.Fetcher
}

func New(cfg Config, fetcher *util.Fetcher) *Scraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Scraper{cfg: cfg, fetcher: fetcher}
}

func (s *Scraper) Name() string { return "Wellfound" }

func (s *Scraper) Search(ctx context.Context, term string) ([]domain.JobRecord, error) {
	params := url.Values{}
	params.Set("search", term)
	params.Set("remote", "true")

	doc, err := s.fetcher.FetchDocument(ctx, s.cfg.BaseURL+"/jobs", params)
	if err != nil {
		return nil, fmt.Errorf("wellfound search %q: %w", term, err)
	}

	seen := map[string]bool{}
	var out []domain.JobRecord
	doc.Find(`a[href*="/jobs/"]`).Each(func(_ int, a *goquery.Selection) {
		link := strings.TrimSpace(a.AttrOr("href", ""))
		if link == "" {
			return
		}
		if strings.HasPrefix(link, "/") {
			link = s.cfg.BaseURL + link
		}
		if seen[link] {
			return
		}
		seen[link] = true

		// the board is remote-only once the remote flag is set, and the
		// anchor text is the richest description the page offers
		title := util.CleanText(a.Text())
		out = append(out, domain.JobRecord{
			Title:    title,
			Location: "Remote",
			Link:     link,
			Source:   "Wellfound",
			Snippet:  title,
		})
	})

	return out, nil
}
