package testhelpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/cortexgate/internal/models"
)

// WriteItem marshals an item into dir as <name>.json and fails the test on
// error. Returns the file path.
func WriteItem(t *testing.T, dir, name string, item models.Item) string {
	t.Helper()

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal item: %v", err)
	}

	path := filepath.Join(dir, name+".json")
	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		t.Fatalf("write item file: %v", writeErr)
	}
	return path
}

// WriteRaw writes raw file content into dir and fails the test on error.
func WriteRaw(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}
