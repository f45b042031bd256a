package scrape

import (
	"testing"

	"jobdigest/internal/config"
	"jobdigest/internal/domain"
)

func filterConfig() config.Config {
	var cfg config.Config
	cfg.Search.Keywords = []string{"devops engineer", "cloud engineer"}
	cfg.Filters.MinYears = 2
	cfg.Filters.MaxYears = 6
	cfg.Filters.LocationsAllow = []string{"india", "pan india"}
	return cfg
}

func TestShouldKeep(t *testing.T) {
	cfg := filterConfig()

	tests := []struct {
		name   string
		rec    domain.JobRecord
		keep   bool
		reason string
	}{
		{
			name: "relevant remote posting",
			rec: domain.JobRecord{
				Title:    "DevOps Engineer",
				Location: "Remote",
				Snippet:  "3+ years with Kubernetes",
			},
			keep: true,
		},
		{
			name: "keyword miss",
			rec: domain.JobRecord{
				Title:    "Frontend Developer",
				Location: "Remote",
				Snippet:  "React and TypeScript",
			},
			keep:   false,
			reason: "keyword",
		},
		{
			name: "experience out of band",
			rec: domain.JobRecord{
				Title:    "DevOps Engineer",
				Location: "Remote",
				Snippet:  "10-15 years of experience required",
			},
			keep:   false,
			reason: "experience",
		},
		{
			name: "wrong location",
			rec: domain.JobRecord{
				Title:    "Cloud Engineer",
				Location: "Austin, TX (onsite)",
				Snippet:  "4 years with AWS",
			},
			keep:   false,
			reason: "location",
		},
		{
			name: "fallback token keeps unknown title",
			rec: domain.JobRecord{
				Title:    "Member of Technical Staff",
				Location: "Bengaluru, India",
				Snippet:  "You will own our cloud platform",
			},
			keep: true,
		},
		{
			name: "empty location falls back to snippet",
			rec: domain.JobRecord{
				Title:   "DevOps Engineer",
				Snippet: "Hybrid role, Pune, India",
			},
			keep: true,
		},
		{
			name: "unstated experience passes",
			rec: domain.JobRecord{
				Title:    "Site Reliability Engineer",
				Location: "Remote",
			},
			keep: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, reason := ShouldKeep(cfg, tt.rec)
			if keep != tt.keep {
				t.Fatalf("keep = %v, want %v (reason %q)", keep, tt.keep, reason)
			}
			if !keep && reason != tt.reason {
				t.Errorf("reason = %q, want %q", reason, tt.reason)
			}
		})
	}
}

func TestFilterRecordsDeterministic(t *testing.T) {
	cfg := filterConfig()
	in := []domain.JobRecord{
		{Title: "DevOps Engineer", Location: "Remote"},
		{Title: "Accountant", Location: "Remote"},
		{Title: "Cloud Engineer", Location: "Mumbai, India", Snippet: "2-4 years"},
	}

	first := FilterRecords(cfg, in)
	second := FilterRecords(cfg, in)

	if len(first) != 2 {
		t.Fatalf("got %d records, want 2", len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("same input filtered differently: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs between runs", i)
		}
	}
	if first[0].Title != "DevOps Engineer" || first[1].Title != "Cloud Engineer" {
		t.Errorf("input order not preserved: %+v", first)
	}
}

func TestFilterRecordsDoesNotMutate(t *testing.T) {
	cfg := filterConfig()
	in := []domain.JobRecord{
		{Title: "DevOps Engineer", Location: "Remote", Snippet: "3+ years"},
	}

	out := FilterRecords(cfg, in)
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}
	if out[0] != in[0] {
		t.Errorf("record was rewritten: %+v vs %+v", out[0], in[0])
	}
}
