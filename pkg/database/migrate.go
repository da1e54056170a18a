package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/school/*.sql migrations/bookapi/*.sql migrations/inventory/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded migrations for the named app
// (school, bookapi, inventory) to the given database.
func RunMigrations(db *sql.DB, app string, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations/"+app)
	if err != nil {
		return fmt.Errorf("load migrations for %s: %w", app, err)
	}

	driver, err := newMigrationDriver(db)
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("migrations in dirty state", zap.Uint("version", version))
	} else {
		logger.Info("migrations applied", zap.Uint("version", version))
	}

	return nil
}

// ── migration driver ──

// migrationDriver runs migrations over an already-open sqlite connection.
// The stock migrate sqlite driver links a second sqlite implementation that
// registers the same database/sql driver name as the gorm dialect, which
// panics at init, so migrations reuse the gorm connection instead.
type migrationDriver struct {
	db     *sql.DB
	locked atomic.Bool
}

func newMigrationDriver(db *sql.DB) (*migrationDriver, error) {
	d := &migrationDriver{db: db}
	if err := d.ensureVersionTable(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *migrationDriver) ensureVersionTable() error {
	_, err := d.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version uint64, dirty bool)`)
	return err
}

// Open is only reachable through URL-based construction, which this driver
// does not support. NewWithInstance never calls it.
func (d *migrationDriver) Open(string) (migratedb.Driver, error) {
	return nil, errors.New("migration driver is bound to an existing connection")
}

// Close is a no-op: the connection belongs to the caller.
func (d *migrationDriver) Close() error { return nil }

func (d *migrationDriver) Lock() error {
	if !d.locked.CompareAndSwap(false, true) {
		return migratedb.ErrLocked
	}
	return nil
}

func (d *migrationDriver) Unlock() error {
	d.locked.Store(false)
	return nil
}

func (d *migrationDriver) Run(migration io.Reader) error {
	stmts, err := io.ReadAll(migration)
	if err != nil {
		return err
	}
	if _, err := d.db.Exec(string(stmts)); err != nil {
		return fmt.Errorf("run migration: %w", err)
	}
	return nil
}

func (d *migrationDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations`); err != nil {
		tx.Rollback()
		return err
	}
	if version >= 0 || (version == migratedb.NilVersion && dirty) {
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirty); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (d *migrationDriver) Version() (int, bool, error) {
	var (
		version int
		dirty   bool
	)
	err := d.db.QueryRow(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return migratedb.NilVersion, false, nil
	case err != nil:
		return 0, false, err
	}
	return version, dirty, nil
}

func (d *migrationDriver) Drop() error {
	rows, err := d.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, t := range tables {
		if _, err := d.db.Exec(`DROP TABLE ` + quoteIdent(t)); err != nil {
			return err
		}
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
