// Package models defines the inbox item schema shared by the repository,
// renderer, and HTTP layer.
package models

import "time"

// Known source categories. Anything else is still a valid item and falls
// through to the generic bucket on archive.
const (
	SourceNewsletter = "newsletter"
	SourceYouTube    = "youtube"
	SourceWebsite    = "website"
	SourceResearch   = "research"
)

// Item represents a single unit of triage content. One inbox JSON file
// holds exactly one item.
type Item struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	CreatedAt string    `json:"created_at,omitempty"`
	Content   string    `json:"content,omitempty"`
	Sections  []Section `json:"sections,omitempty"`
	Links     []string  `json:"links,omitempty"`
	Metadata  *Metadata `json:"metadata,omitempty"`
}

// Section is one structured body block. Sections supersede the legacy
// Content string when present.
type Section struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// Metadata carries optional per-source fields copied into front-matter.
type Metadata struct {
	URL      string `json:"url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// createdAtLayouts are tried in order when parsing CreatedAt. Upstream
// producers emit a mix of RFC 3339 timestamps and bare dates.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreatedTime parses the item's created_at field. Returns false when the
// field is absent or unparsable; callers substitute the current time.
func (i *Item) CreatedTime() (time.Time, bool) {
	if i.CreatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, i.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasSections reports whether the structured body format is present and
// non-empty.
func (i *Item) HasSections() bool {
	return len(i.Sections) > 0
}
