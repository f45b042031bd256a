package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdigest/internal/domain"
)

var renderTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleRecords() []domain.JobRecord {
	return []domain.JobRecord{
		{Title: "DevOps Engineer", Company: "Acme", Location: "Remote", Link: "https://x.com/j/1", Source: "Indeed"},
		{Title: "Cloud Engineer", Location: "Pune, India", Link: "https://x.com/j/2", Source: "Indeed"},
		{Title: "SRE", Company: "Globex", Location: "Remote", Link: "https://x.com/j/3", Source: "Email"},
	}
}

func TestRenderSubjectCarriesDate(t *testing.T) {
	r := NewRenderer("Daily Cloud & DevOps Jobs")

	d, err := r.Render(sampleRecords(), renderTime)
	require.NoError(t, err)
	assert.Equal(t, "Daily Cloud & DevOps Jobs - 2025-03-14", d.Subject)
}

func TestRenderGroupsBySourceInFirstSeenOrder(t *testing.T) {
	r := NewRenderer("Jobs")

	d, err := r.Render(sampleRecords(), renderTime)
	require.NoError(t, err)

	indeedAt := strings.Index(d.HTML, "Indeed")
	emailAt := strings.Index(d.HTML, "Email")
	require.True(t, indeedAt >= 0 && emailAt >= 0, "both source sections present")
	assert.Less(t, indeedAt, emailAt, "sections follow first-appearance order")

	assert.Contains(t, d.HTML, `<a href="https://x.com/j/1">DevOps Engineer</a>`)
	assert.Contains(t, d.HTML, "3 matching jobs")
	assert.Contains(t, d.HTML, "Generated 2025-03-14 09:30 UTC")
}

func TestRenderFallbacksForMissingFields(t *testing.T) {
	r := NewRenderer("Jobs")

	recs := []domain.JobRecord{
		{Link: "https://x.com/j/9", Source: "Wellfound"},
		{Title: "No Link Job", Source: "Wellfound"},
	}
	d, err := r.Render(recs, renderTime)
	require.NoError(t, err)

	assert.Contains(t, d.HTML, "(untitled)", "empty titles get a placeholder")
	assert.Contains(t, d.HTML, "Wellfound", "empty company falls back to the source tag")
	assert.NotContains(t, d.HTML, `href=""`, "linkless rows render without an anchor")
}

func TestRenderEscapesScrapedText(t *testing.T) {
	r := NewRenderer("Jobs")

	recs := []domain.JobRecord{
		{Title: `<script>alert("x")</script>`, Link: "https://x.com/j/1", Source: "Indeed"},
	}
	d, err := r.Render(recs, renderTime)
	require.NoError(t, err)

	assert.NotContains(t, d.HTML, "<script>alert")
	assert.Contains(t, d.HTML, "&lt;script&gt;")
}

func TestRenderEmptyVariant(t *testing.T) {
	r := NewRenderer("Jobs")

	d, err := r.Render(nil, renderTime)
	require.NoError(t, err)

	assert.Equal(t, "Jobs - 2025-03-14", d.Subject)
	assert.Contains(t, d.HTML, "No matching jobs")
	assert.Contains(t, d.Text, "No matching jobs were found in this run.")
}

func TestRenderPlainTextMirrorsHTML(t *testing.T) {
	r := NewRenderer("Jobs")

	d, err := r.Render(sampleRecords(), renderTime)
	require.NoError(t, err)

	assert.Contains(t, d.Text, "3 matching jobs")
	assert.Contains(t, d.Text, "1. DevOps Engineer @ Acme [Remote]")
	assert.Contains(t, d.Text, "https://x.com/j/3")

	indeedAt := strings.Index(d.Text, "Indeed")
	emailAt := strings.Index(d.Text, "Email")
	assert.Less(t, indeedAt, emailAt)
}
