// Package digest renders the run's surviving records into the deliverable
// document: an HTML body, a plain text alternative and a dated subject line.
// One run produces exactly one digest, even when it is empty.
package digest

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"jobdigest/internal/domain"
)

// Rendered is one complete digest ready for delivery.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

type row struct {
	Index    int
	Title    string
	Company  string
	Location string
	Link     string
}

type group struct {
	Source string
	Jobs   []row
}

type templateData struct {
	Count       int
	GeneratedAt string
	Groups      []group
}

// Renderer turns record lists into digests.
type Renderer struct {
	tmpl          *template.Template
	subjectPrefix string
}

func NewRenderer(subjectPrefix string) *Renderer {
	return &Renderer{
		tmpl:          template.Must(template.New("digest").Parse(digestHTMLTemplate)),
		subjectPrefix: subjectPrefix,
	}
}

// Render produces the digest for records generated at ts. An empty record
// list renders the no-results variant; the mail still goes out so a silent
// scrape failure is distinguishable from a quiet day.
func (r *Renderer) Render(records []domain.JobRecord, ts time.Time) (*Rendered, error) {
	data := templateData{
		Count:       len(records),
		GeneratedAt: ts.UTC().Format("2006-01-02 15:04 UTC"),
		Groups:      groupBySource(records),
	}

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("render digest: %w", err)
	}

	return &Rendered{
		Subject: fmt.Sprintf("%s - %s", r.subjectPrefix, ts.UTC().Format("2006-01-02")),
		HTML:    htmlBuf.String(),
		Text:    renderPlainText(data),
	}, nil
}

// groupBySource buckets records by source tag. Groups appear in order of
// first appearance and rows keep pipeline order, so the digest reads the
// same way the run collected. Index numbers rows across the whole digest.
func groupBySource(records []domain.JobRecord) []group {
	var groups []group
	at := map[string]int{}

	for i, rec := range records {
		r := row{
			Index:    i + 1,
			Title:    rec.Title,
			Company:  rec.Company,
			Location: rec.Location,
			Link:     rec.Link,
		}
		if r.Title == "" {
			r.Title = "(untitled)"
		}
		if r.Company == "" {
			r.Company = rec.Source
		}

		gi, ok := at[rec.Source]
		if !ok {
			groups = append(groups, group{Source: rec.Source})
			gi = len(groups) - 1
			at[rec.Source] = gi
		}
		groups[gi].Jobs = append(groups[gi].Jobs, r)
	}
	return groups
}

func renderPlainText(data templateData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job digest, %s\n", data.GeneratedAt))
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	if data.Count == 0 {
		sb.WriteString("No matching jobs were found in this run.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%d matching jobs\n\n", data.Count))
	for _, g := range data.Groups {
		sb.WriteString(g.Source + "\n")
		sb.WriteString(strings.Repeat("-", 20) + "\n")
		for _, j := range g.Jobs {
			sb.WriteString(fmt.Sprintf("%d. %s", j.Index, j.Title))
			if j.Company != "" && j.Company != g.Source {
				sb.WriteString(" @ " + j.Company)
			}
			if j.Location != "" {
				sb.WriteString(" [" + j.Location + "]")
			}
			sb.WriteString("\n")
			if j.Link != "" {
				sb.WriteString("   " + j.Link + "\n")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
