package indeed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

const defaultBaseURL = "https://in.indeed.com"

// maxResults caps how many anchors one invocation considers. Result pages
// carry far more links than jobs; past the first screen it is all pagination
// and promos.
const maxResults = 25

type Config struct {
	BaseURL string // override for tests; empty means the public site
}

// Scraper reads the first Indeed India result page for a search term. Indeed
// rebuilds its card markup often; the durable hooks are the data-jk job key
// attribute and the job_seen_beacon card class, so both are selected.
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

func (s *Scraper) Name() string { return "Indeed" }

func (s *Scraper) Search(ctx context.Context, term string) ([]domain.JobRecord, error) {
	params := url.Values{}
	params.Set("q", term+" remote cloud devops")
	params.Set("l", "India")

	doc, err := s.fetcher.FetchDocument(ctx, s.cfg.BaseURL+"/jobs", params)
	if err != nil {
		return nil, fmt.Errorf("indeed search %q: %w", term, err)
	}

	var out []domain.JobRecord
	doc.Find("a[data-jk], .job_seen_beacon a").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= maxResults {
			return false
		}

		title := util.CleanText(a.Text())
		link := strings.TrimSpace(a.AttrOr("href", ""))
		if strings.HasPrefix(link, "/") {
			link = s.cfg.BaseURL + link
		}
		if title == "" && link == "" {
			return true
		}

		// the card around the anchor is the closest thing to a description
		snippet := ""
		if parent := a.Parent(); parent.Length() > 0 {
			snippet = util.CleanText(parent.Text())
		}

		out = append(out, domain.JobRecord{
			Title:    title,
			Location: snippet,
			Link:     link,
			Source:   "Indeed",
			Snippet:  snippet,
		})
		return true
	})

	return out, nil
}
