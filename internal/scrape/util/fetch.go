package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// Fetcher performs the one HTTP GET every web adapter needs: host pacing, a
// browser User-Agent, a status check and charset-aware HTML parsing. Sites
// in scope still serve ISO-8859-1 and friends, so the body is decoded from
// the declared charset before goquery sees it.
type Fetcher struct {
	Client    *http.Client
	Limiter   *Limiter
	UserAgent string
}

// NewFetcher builds a Fetcher whose requests time out after timeout and are
// paced by limiter (nil limiter means unpaced).
func NewFetcher(timeout time.Duration, limiter *Limiter, userAgent string) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: timeout},
		Limiter:   limiter,
		UserAgent: userAgent,
	}
}

// FetchDocument GETs rawURL with params appended to its query string and
// parses the response into a document. A transport failure or a status of
// 400 or above is an error; selectors that match nothing later are not.
func (f *Fetcher) FetchDocument(ctx context.Context, rawURL string, params url.Values) (*goquery.Document, error) {
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
		}
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
		rawURL = u.String()
	}

	if err := f.Limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	res, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("get %s: status %d", rawURL, res.StatusCode)
	}

	body, err := charset.NewReader(res.Body, res.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rawURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return doc, nil
}
