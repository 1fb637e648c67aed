package sql

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"github.com/bnema/hksl/internal/ports"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const pingTimeout = 10 * time.Second

// Repository stores identities in SQLite or PostgreSQL.
type Repository struct {
	dialect Dialect
	db      *sql.DB
	clock   ports.Clock
}

var _ ports.IdentityRepository = (*Repository)(nil)

// Open connects, pings and migrates. For SQLite dsn is a file path.
func Open(ctx context.Context, dialect Dialect, dsn string) (*Repository, error) {
	dsn = strings.TrimSpace(dsn)

	var driverName string
	switch dialect {
	case DialectSQLite:
		driverName = "sqlite"
		if dsn == "" {
			return nil, errors.New("sqlite store requires a database path")
		}
		if dsn != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o700); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
	case DialectPostgres:
		driverName = "pgx"
		if dsn == "" {
			return nil, errors.New("postgres store requires a dsn")
		}
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}

	repo := &Repository{dialect: dialect, db: db, clock: ports.SystemClock{}}
	if err := repo.migrate(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) GetByUserID(ctx context.Context, id domain.UserID) (domain.Identity, error) {
	query := fmt.Sprintf("SELECT slack_id, username, password, last_sent_to FROM identities WHERE slack_id = %s", r.bind(1))
	return r.queryOne(ctx, query, string(id))
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (domain.Identity, error) {
	query := fmt.Sprintf("SELECT slack_id, username, password, last_sent_to FROM identities WHERE username = %s ORDER BY linked_at DESC LIMIT 1", r.bind(1))
	return r.queryOne(ctx, query, username)
}

func (r *Repository) Create(ctx context.Context, identity domain.Identity) error {
	if identity.UserID == "" {
		return errors.New("identity user id is required")
	}

	query := fmt.Sprintf(`
		INSERT INTO identities (slack_id, username, password, last_sent_to, linked_at)
		VALUES (%s, %s, %s, %s, %s)
		ON CONFLICT (slack_id) DO UPDATE SET
			username = excluded.username,
			password = excluded.password,
			last_sent_to = excluded.last_sent_to,
			linked_at = excluded.linked_at
	`, r.bind(1), r.bind(2), r.bind(3), r.bind(4), r.bind(5))

	_, err := r.db.ExecContext(ctx, query,
		string(identity.UserID),
		identity.Username,
		identity.Password,
		identity.LastSentTo,
		r.clock.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save identity %s: %w", identity.UserID, err)
	}

	return nil
}

func (r *Repository) UpdateLastSentTo(ctx context.Context, id domain.UserID, recipient string) error {
	query := fmt.Sprintf("UPDATE identities SET last_sent_to = %s WHERE slack_id = %s", r.bind(1), r.bind(2))

	result, err := r.db.ExecContext(ctx, query, recipient, string(id))
	if err != nil {
		return fmt.Errorf("update last recipient for %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update last recipient for %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("identity %s: %w", id, domain.ErrIdentityNotFound)
	}

	return nil
}

func (r *Repository) queryOne(ctx context.Context, query string, arg any) (domain.Identity, error) {
	var (
		identity domain.Identity
		userID   string
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(&userID, &identity.Username, &identity.Password, &identity.LastSentTo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Identity{}, domain.ErrIdentityNotFound
		}
		return domain.Identity{}, fmt.Errorf("query identity: %w", err)
	}
	identity.UserID = domain.UserID(userID)

	return identity, nil
}

func (r *Repository) bind(pos int) string {
	if r.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (r *Repository) migrate(ctx context.Context) error {
	create := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := r.appliedMigrations(ctx)
	if err != nil {
		return err
	}

	files, err := fs.Glob(migrationFS, fmt.Sprintf("migrations/%s/*.sql", r.dialect))
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		version := filepath.Base(file)
		if applied[version] {
			continue
		}
		if err := r.applyMigration(ctx, file, version); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) appliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applied := map[string]bool{}
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan schema migration: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema migrations: %w", err)
	}

	return applied, nil
}

func (r *Repository) applyMigration(ctx context.Context, file, version string) error {
	statement, err := migrationFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", file, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(statement)); err != nil {
		return fmt.Errorf("apply migration %s: %w", version, err)
	}

	record := fmt.Sprintf("INSERT INTO schema_migrations (version, applied_at) VALUES (%s, %s)", r.bind(1), r.bind(2))
	if _, err := tx.ExecContext(ctx, record, version, time.Now().UTC()); err != nil {
		return fmt.Errorf("record migration %s: %w", version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", version, err)
	}

	return nil
}
