package sitesearch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/domain"
	"jobdigest/internal/scrape/util"
)

const defaultBaseURL = "https://duckduckgo.com"

// maxResults bounds how much of a search page one invocation trusts. Past
// the first screen DDG results drift off the target domain anyway.
const maxResults = 15

type Config struct {
	Domain  string // site: target, e.g. careers.google.com
	BaseURL string // override for tests; empty means the public endpoint
}

// Scraper covers career sites with no scrapeable listing of their own by
// running a DuckDuckGo html-endpoint query scoped to one domain. Results are
// search hits, not job cards, so company is pinned to the domain and the
// surrounding result text serves as both snippet and location blob.
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

func (s *Scraper) Name() string { return "Search:" + s.cfg.Domain }

func (s *Scraper) Search(ctx context.Context, term string) ([]domain.JobRecord, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("site:%s %s remote india", s.cfg.Domain, term))

	doc, err := s.fetcher.FetchDocument(ctx, s.cfg.BaseURL+"/html", params)
	if err != nil {
		return nil, fmt.Errorf("site search %s %q: %w", s.cfg.Domain, term, err)
	}

	var out []domain.JobRecord
	doc.Find("a.result__a").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if i >= maxResults {
			return false
		}

		link := decodeRedirect(strings.TrimSpace(a.AttrOr("href", "")))

		snippet := ""
		if parent := a.Closest("div"); parent.Length() > 0 {
			snippet = util.CleanText(parent.Text())
		}

		out = append(out, domain.JobRecord{
			Title:    util.CleanText(a.Text()),
			Company:  s.cfg.Domain,
			Location: snippet,
			Link:     link,
			Source:   "Search:" + s.cfg.Domain,
			Snippet:  snippet,
		})
		return true
	})

	return out, nil
}

// decodeRedirect unwraps DDG's /l/?uddg=<urlencoded> result links so records
// carry the real posting URL. Anything else passes through untouched.
func decodeRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if uddg := u.Query().Get("uddg"); uddg != "" {
		if dec, err := url.QueryUnescape(uddg); err == nil && dec != "" {
			return dec
		}
	}
	return href
}
