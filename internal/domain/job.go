package domain

// JobRecord is one job posting as emitted by a source adapter. Adapters fill
// whatever fields the source exposes; an empty string means unknown. Records
// are immutable once emitted: downstream stages decide keep/drop but never
// rewrite fields.
type JobRecord struct {
	Title    string
	Company  string
	Location string
	Link     string // posting URL; dedup identity
	Source   string // producing adapter tag, e.g. "Indeed" or "Search:<domain>"
	Snippet  string // surrounding page text; fallback signal for filtering
}
