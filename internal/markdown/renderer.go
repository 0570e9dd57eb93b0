// Package markdown converts items into knowledge-base Markdown documents
// with YAML front-matter. Rendering is deterministic: a fixed item with a
// parsable created_at produces byte-identical output on every call.
package markdown

import (
	"strings"
	"time"

	"github.com/jonesrussell/cortexgate/internal/models"
)

const dateLayout = "2006-01-02"

// Render produces the Markdown document for an item. The now function
// supplies the fallback date when created_at is absent or unparsable;
// pass time.Now in production.
func Render(item *models.Item, now func() time.Time) string {
	var b strings.Builder

	b.WriteString("---\n")
	writeField(&b, "type", item.Source+"-summary")
	writeField(&b, "date", Date(item, now))
	writeField(&b, "source", item.Source)
	b.WriteString("tags:\n")
	for _, tag := range []string{item.Source, "summary", "cortexgate"} {
		b.WriteString("  - " + tag + "\n")
	}
	if item.Metadata != nil {
		if item.Metadata.URL != "" {
			writeField(&b, "url", item.Metadata.URL)
		}
		if item.Metadata.VideoURL != "" {
			writeField(&b, "video_url", item.Metadata.VideoURL)
		}
		if item.Metadata.Duration != "" {
			writeField(&b, "duration", item.Metadata.Duration)
		}
	}
	b.WriteString("---\n\n")

	b.WriteString("# " + item.Title + "\n\n")
	b.WriteString("> [!tldr] TL;DR\n> " + item.Summary + "\n\n")

	// Structured sections supersede the legacy content string.
	switch {
	case item.HasSections():
		for _, section := range item.Sections {
			b.WriteString("## " + section.Heading + "\n\n")
			for _, line := range section.Items {
				b.WriteString("- " + line + "\n")
			}
			b.WriteString("\n")
		}
	case item.Content != "":
		b.WriteString("## Details\n\n" + item.Content + "\n\n")
	}

	if len(item.Links) > 0 {
		b.WriteString("## Links\n\n")
		for _, link := range item.Links {
			b.WriteString("- " + link + "\n")
		}
	}

	return b.String()
}

// Date resolves the item's date as YYYY-MM-DD in UTC, substituting the
// current date when created_at cannot be parsed.
func Date(item *models.Item, now func() time.Time) string {
	if t, ok := item.CreatedTime(); ok {
		return t.UTC().Format(dateLayout)
	}
	return now().UTC().Format(dateLayout)
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key + ": " + value + "\n")
}
