package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.sql
var migrationsFS embed.FS

// GoMigrationFunc runs a migration step that cannot be expressed in plain SQL.
type GoMigrationFunc func(tx *sql.Tx) error

// Migration represents a database migration
type Migration struct {
	Version  int
	Name     string
	Up       string
	Down     string
	UpFunc   GoMigrationFunc
	DownFunc GoMigrationFunc
}

type goMigration struct {
	name     string
	up, down GoMigrationFunc
}

var goMigrations = map[int]goMigration{}

// RegisterGoMigration registers a migration implemented in Go. It panics on a
// duplicate version since that can only be a programming error.
func RegisterGoMigration(version int, name string, up, down GoMigrationFunc) {
	if _, exists := goMigrations[version]; exists {
		panic(fmt.Sprintf("migrations: duplicate Go migration version %d", version))
	}
	goMigrations[version] = goMigration{name: name, up: up, down: down}
}

// RunMigrations executes all pending migrations. Running it against an
// up-to-date database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := createMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	if err := checkDirty(ctx, db); err != nil {
		return err
	}

	migrations, err := LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}
		if err := applyMigration(ctx, db, migration); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", migration.Version, migration.Name, err)
		}
	}

	return nil
}

// Rollback reverts the most recent applied migrations, newest first.
func Rollback(ctx context.Context, db *sql.DB, steps int) error {
	migrations, err := LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for i := len(migrations) - 1; i >= 0 && steps > 0; i-- {
		migration := migrations[i]
		if !applied[migration.Version] {
			continue
		}
		if err := revertMigration(ctx, db, migration); err != nil {
			return fmt.Errorf("failed to revert migration %d (%s): %w", migration.Version, migration.Name, err)
		}
		steps--
	}

	return nil
}

// AppliedVersions returns the set of versions recorded as applied.
func AppliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		dirty BOOLEAN NOT NULL DEFAULT 0
	)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return err
	}

	// Tables created before the dirty flag existed get the column added
	var hasDirty int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM pragma_table_info('schema_migrations') WHERE name = 'dirty'",
	).Scan(&hasDirty)
	if err != nil {
		return err
	}
	if hasDirty == 0 {
		_, err = db.ExecContext(ctx, "ALTER TABLE schema_migrations ADD COLUMN dirty BOOLEAN NOT NULL DEFAULT 0")
	}
	return err
}

// checkDirty refuses to migrate while any version is flagged dirty. A dirty
// row means a migration was interrupted outside its transaction and the
// schema needs manual repair.
func checkDirty(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations WHERE dirty ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to check migration state: %w", err)
	}
	defer rows.Close()

	var dirty []int
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return err
		}
		dirty = append(dirty, version)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(dirty) > 0 {
		return fmt.Errorf("database is in a dirty state, failed migration(s): %v", dirty)
	}
	return nil
}

// LoadMigrations returns the embedded SQL migrations merged with the
// registered Go migrations, ordered by version.
func LoadMigrations() ([]Migration, error) {
	entries, err := migrationsFS.ReadDir(".")
	if err != nil {
		return nil, err
	}

	byVersion := make(map[int]*Migration)
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}

		version := extractVersion(entry.Name())
		if version == 0 {
			continue
		}

		upSQL, err := migrationsFS.ReadFile(entry.Name())
		if err != nil {
			return nil, err
		}

		downFile := strings.Replace(entry.Name(), ".up.sql", ".down.sql", 1)
		downSQL, err := migrationsFS.ReadFile(downFile)
		if err != nil {
			return nil, err
		}

		byVersion[version] = &Migration{
			Version: version,
			Name:    extractName(entry.Name()),
			Up:      string(upSQL),
			Down:    string(downSQL),
		}
	}

	for version, gm := range goMigrations {
		if _, exists := byVersion[version]; exists {
			return nil, fmt.Errorf("migration %d is defined both in SQL and in Go", version)
		}
		byVersion[version] = &Migration{
			Version:  version,
			Name:     gm.name,
			UpFunc:   gm.up,
			DownFunc: gm.down,
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func applyMigration(ctx context.Context, db *sql.DB, migration Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if migration.Up != "" {
		if _, err := tx.ExecContext(ctx, migration.Up); err != nil {
			return err
		}
	}
	if migration.UpFunc != nil {
		if err := migration.UpFunc(tx); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, dirty) VALUES (?, 0)", migration.Version); err != nil {
		return err
	}

	return tx.Commit()
}

func revertMigration(ctx context.Context, db *sql.DB, migration Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if migration.DownFunc != nil {
		if err := migration.DownFunc(tx); err != nil {
			return err
		}
	}
	if migration.Down != "" {
		if _, err := tx.ExecContext(ctx, migration.Down); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = ?", migration.Version); err != nil {
		return err
	}

	return tx.Commit()
}

func extractVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}

// extractName turns "000002_add_tasks_order_index.up.sql" into "add_tasks_order_index".
func extractName(filename string) string {
	name := strings.TrimSuffix(filename, ".up.sql")
	if idx := strings.Index(name, "_"); idx != -1 {
		return name[idx+1:]
	}
	return name
}
