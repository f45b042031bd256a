package email

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobdigest/internal/scrape/util"
)

// alertJob is one posting reconstructed from a job-alert mail.
type alertJob struct {
	Title    string
	Company  string
	Location string
	URL      string
}

var reJobID = regexp.MustCompile(`/jobs/view/(\d+)`)

// boilerplate LinkedIn appends to card anchor text
var titleJunk = []string{"Actively recruiting", "Easy Apply", "Promoted"}

// parseAlertHTML reconstructs postings from a LinkedIn job-alert HTML body.
// A card links the same job id from several anchors (logo, title, CTA), so
// anchors merge by id; without merging, the logo anchor claims the job with
// an empty title and the real title anchor gets discarded as a duplicate.
// Jobs come back in first-anchor order.
func parseAlertHTML(htmlBody string) ([]alertJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil, err
	}

	byKey := map[string]*alertJob{}
	var order []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}

		// unwrap before filtering; wrapped redirects hide the job path in a
		// percent-encoded parameter
		jobURL := unwrapRedirect(href)
		lu := strings.ToLower(jobURL)
		if !strings.Contains(lu, "linkedin.com") || !strings.Contains(lu, "/jobs/view/") {
			return
		}
		key := jobURL
		if m := reJobID.FindStringSubmatch(jobURL); len(m) == 2 {
			key = "linkedin:" + m[1]
		}

		j, ok := byKey[key]
		if !ok {
			j = &alertJob{URL: jobURL}
			byKey[key] = j
			order = append(order, key)
		}

		if cand := candidateTitle(a.Text()); preferTitle(cand, j.Title) {
			j.Title = cand
		}

		// the enclosing table or row is the card; company and location
		// usually sit in a "Company · Location" paragraph inside it
		card := a.Closest("table")
		if card.Length() == 0 {
			card = a.Closest("tr")
		}
		if card.Length() == 0 {
			card = a.Parent()
		}

		card.Find("p").Each(func(_ int, p *goquery.Selection) {
			t := util.CleanText(p.Text())
			if t == "" {
				return
			}
			if j.Company == "" && j.Location == "" && strings.Contains(t, " · ") {
				parts := strings.SplitN(t, " · ", 2)
				j.Company = strings.TrimSpace(parts[0])
				j.Location = strings.TrimSpace(parts[1])
				return
			}
			if cand := candidateTitle(t); preferTitle(cand, j.Title) {
				j.Title = cand
			}
		})
	})

	out := make([]alertJob, 0, len(byKey))
	for _, key := range order {
		j := byKey[key]
		if j.Title == "" || j.URL == "" {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

// candidateTitle cleans anchor or paragraph text into a possible job title,
// or returns empty when the text is clearly not one.
func candidateTitle(s string) string {
	s = util.CleanText(s)
	for _, junk := range titleJunk {
		s = strings.TrimSpace(strings.ReplaceAll(s, junk, ""))
	}
	low := strings.ToLower(s)
	if strings.Contains(low, "connections") ||
		strings.Contains(low, "applicants") ||
		strings.Contains(low, "view job") ||
		strings.Contains(low, "see all jobs") ||
		strings.Contains(s, " · ") {
		return ""
	}
	return util.CleanText(s)
}

// preferTitle replaces current only when the candidate is clearly more of a
// title. Logo anchors produce empty candidates and CTA anchors short ones;
// requiring a real margin stops the title flip-flopping between anchors.
func preferTitle(cand, current string) bool {
	if cand == "" {
		return false
	}
	if current == "" {
		return len(cand) >= 4
	}
	return len(cand) >= len(current)+3
}

// unwrapRedirect resolves tracking wrappers that carry the real posting URL
// in a url= query parameter.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			return uu.String()
		}
	}
	if u.Host != "" {
		return u.String()
	}
	return href
}
