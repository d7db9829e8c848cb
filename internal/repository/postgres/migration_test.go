package postgres

import (
	"os"
	"strings"
	"testing"
)

func TestFindSchemaFromPackageDir(t *testing.T) {
	path := findSchema()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("schema not found at %s: %v", path, err)
	}
	if !strings.Contains(string(content), "CREATE TABLE IF NOT EXISTS move_log") {
		t.Fatalf("schema does not define move_log")
	}
}
