package postgres

import (
	"database/sql"
	"fmt"
	"os"
)

// schemaPaths are checked in order so migrations work from the repo root,
// from cmd/api and from package directories under go test.
var schemaPaths = []string{
	"script/migration/schema.sql",
	"../script/migration/schema.sql",
	"../../script/migration/schema.sql",
	"../../../script/migration/schema.sql",
}

// RunMigrations executes the schema.sql file to initialize the database
func RunMigrations(db *sql.DB) error {
	schemaPath := findSchema()

	content, err := os.ReadFile(schemaPath)
	if err != nil {
		wd, _ := os.Getwd()
		return fmt.Errorf("failed to read migration file '%s' (wd: %s): %w", schemaPath, wd, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute schema.sql: %w", err)
	}
	return nil
}

func findSchema() string {
	for _, path := range schemaPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return schemaPaths[0]
}
