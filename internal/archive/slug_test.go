package archive_test

import (
	"strings"
	"testing"

	"github.com/jonesrussell/cortexgate/internal/archive"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "umlauts and punctuation",
			title: "Über KI & Produktivität!",
			want:  "ueber-ki-produktivitaet",
		},
		{
			name:  "sharp s",
			title: "Straße",
			want:  "strasse",
		},
		{
			name:  "collapse runs",
			title: "a  --  b!!c",
			want:  "a-b-c",
		},
		{
			name:  "trim edges",
			title: "-- hello --",
			want:  "hello",
		},
		{
			name:  "plain",
			title: "Simple Title 42",
			want:  "simple-title-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archive.Slugify(tt.title))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := archive.Slugify(strings.Repeat("word ", 30))
	assert.Len(t, slug, 50)
}
