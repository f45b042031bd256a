package sitesearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/scrape/util"
)

const resultPage = `<!DOCTYPE html>
<html><body>
  <div class="result">
    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fcareers.google.com%2Fjobs%2F123&rut=abc">Cloud Engineer, Bengaluru</a>
    <div class="result__snippet">Build and run Google Cloud infrastructure. 3-5 years experience. Bengaluru, India.</div>
  </div>
  <div class="result">
    <a class="result__a" href="https://careers.google.com/jobs/456">SRE, Hyderabad</a>
  </div>
</body></html>`

func newTestScraper(t *testing.T, handler http.HandlerFunc) *Scraper {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	fetcher := util.NewFetcher(5*time.Second, nil, "test-agent")
	return New(Config{Domain: "careers.google.com", BaseURL: srv.URL}, fetcher)
}

func TestSearchBuildsSiteScopedQuery(t *testing.T) {
	var gotQuery string
	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(resultPage))
	})

	_, err := s.Search(context.Background(), "devops engineer")
	require.NoError(t, err)
	assert.Equal(t, "site:careers.google.com devops engineer remote india", gotQuery)
}

func TestSearchUnwrapsRedirectLinks(t *testing.T) {
	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resultPage))
	})

	recs, err := s.Search(context.Background(), "devops")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "https://careers.google.com/jobs/123", recs[0].Link)
	assert.Equal(t, "Cloud Engineer, Bengaluru", recs[0].Title)
	assert.Equal(t, "careers.google.com", recs[0].Company)
	assert.Equal(t, "Search:careers.google.com", recs[0].Source)
	assert.Contains(t, recs[0].Snippet, "3-5 years")
	assert.Equal(t, recs[0].Snippet, recs[0].Location)

	assert.Equal(t, "https://careers.google.com/jobs/456", recs[1].Link, "plain links pass through")
}

func TestSearchCapsResults(t *testing.T) {
	page := "<html><body>"
	for i := 0; i < 30; i++ {
		page += fmt.Sprintf(`<div><a class="result__a" href="https://careers.google.com/jobs/%d">Job %d</a></div>`, i, i)
	}
	page += "</body></html>"

	s := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	})

	recs, err := s.Search(context.Background(), "devops")
	require.NoError(t, err)
	assert.Len(t, recs, maxResults)
}

func TestDecodeRedirect(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "wrapped",
			in:   "//duckduckgo.com/l/?uddg=" + url.QueryEscape("https://example.com/jobs/1?x=1"),
			want: "https://example.com/jobs/1?x=1",
		},
		{name: "plain", in: "https://example.com/jobs/2", want: "https://example.com/jobs/2"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeRedirect(tt.in))
		})
	}
}
