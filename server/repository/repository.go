package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
	"github.com/ponyo877/karaokesh/server/domain"
	"github.com/ponyo877/karaokesh/server/usecase"
)

const (
	DriverSQLite = "sqlite3"
	DriverPgx    = "pgx"
	DriverFile   = "file"
	DriverMemory = "memory"

	sqliteHookedDriver = "sqlite3_karaokesh"
)

var ErrUnknownDriver = errors.New("unknown store driver")

var registerSQLite sync.Once

// OpenDB opens a database handle for the sqlite3 or pgx driver. SQLite
// connections get WAL journaling and a busy timeout.
func OpenDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		registerSQLite.Do(func() {
			sql.Register(sqliteHookedDriver,
				&sqlite3.SQLiteDriver{
					ConnectHook: func(conn *sqlite3.SQLiteConn) error {
						_, err := conn.Exec("PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;", nil)
						return err
					},
				})
		})
		db, err := sql.Open(sqliteHookedDriver, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		db.SetMaxOpenConns(1)
		return db, nil
	case DriverPgx:
		db, err := sql.Open(DriverPgx, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		hostcode TEXT NOT NULL,
		business_name TEXT NOT NULL,
		slogan TEXT NOT NULL,
		flyer_url TEXT NOT NULL,
		last_played TEXT NOT NULL,
		version BIGINT NOT NULL,
		created_at BIGINT NOT NULL,
		updated_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS devices (
		session_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		user_agent TEXT NOT NULL,
		created_at BIGINT NOT NULL,
		last_active BIGINT NOT NULL,
		PRIMARY KEY (session_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS queue_items (
		session_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		title TEXT NOT NULL,
		genre TEXT NOT NULL,
		username TEXT,
		photo_url TEXT,
		message TEXT,
		PRIMARY KEY (session_id, position)
	)`,
}

// Repository stores the session collection in three tables and rewrites
// them in a single transaction on every save.
type Repository struct {
	db     *sql.DB
	driver string
}

func NewRepository(ctx context.Context, db *sql.DB, driver string) (usecase.Repository, error) {
	r := &Repository{db: db, driver: driver}
	if err := r.migrate(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

func (r *Repository) q(query string) string {
	return rebind(r.driver, query)
}

// LoadAll never fails: a broken store is logged and treated as empty.
func (r *Repository) LoadAll(ctx context.Context) ([]domain.Session, error) {
	sessions, err := r.loadAll(ctx)
	if err != nil {
		log.Printf("Error loading sessions from %s: %v", r.driver, err)
		return []domain.Session{}, nil
	}
	return sessions, nil
}

func (r *Repository) loadAll(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, hostcode, business_name, slogan, flyer_url, last_played, version, created_at, updated_at
		FROM sessions ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	index := map[string]int{}
	for rows.Next() {
		var s domain.Session
		var createdAt, updatedAt int64
		if err := rows.Scan(&s.ID, &s.Hostcode, &s.Business.BusinessName, &s.Business.Slogan, &s.Business.FlyerURL,
			&s.LastPlayed, &s.Version, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("error scanning session: %w", err)
		}
		s.CreatedAt = fromUnixNano(createdAt)
		s.UpdatedAt = fromUnixNano(updatedAt)
		s.Devices = []domain.Device{}
		s.Queue = []domain.QueueItem{}
		index[s.ID] = len(sessions)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	if err := r.loadDevices(ctx, sessions, index); err != nil {
		return nil, err
	}
	if err := r.loadQueue(ctx, sessions, index); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *Repository) loadDevices(ctx context.Context, sessions []domain.Session, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, id, name, user_agent, created_at, last_active
		FROM devices ORDER BY session_id, position
	`)
	if err != nil {
		return fmt.Errorf("error querying devices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID string
		var d domain.Device
		var createdAt, lastActive int64
		if err := rows.Scan(&sessionID, &d.ID, &d.Name, &d.UserAgent, &createdAt, &lastActive); err != nil {
			return fmt.Errorf("error scanning device: %w", err)
		}
		i, ok := index[sessionID]
		if !ok {
			continue
		}
		d.CreatedAt = fromUnixNano(createdAt)
		d.LastActive = fromUnixNano(lastActive)
		sessions[i].Devices = append(sessions[i].Devices, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating devices: %w", err)
	}
	return nil
}

func (r *Repository) loadQueue(ctx context.Context, sessions []domain.Session, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, id, title, genre, username, photo_url, message
		FROM queue_items ORDER BY session_id, position
	`)
	if err != nil {
		return fmt.Errorf("error querying queue items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID string
		var item domain.QueueItem
		var username, photoURL, message sql.NullString
		if err := rows.Scan(&sessionID, &item.ID, &item.Title, &item.Genre, &username, &photoURL, &message); err != nil {
			return fmt.Errorf("error scanning queue item: %w", err)
		}
		i, ok := index[sessionID]
		if !ok {
			continue
		}
		if username.Valid {
			item.SubmittedBy = &domain.UserMessage{
				Username: username.String,
				PhotoURL: photoURL.String,
				Message:  message.String,
			}
		}
		sessions[i].Queue = append(sessions[i].Queue, item)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating queue items: %w", err)
	}
	return nil
}

func (r *Repository) SaveAll(ctx context.Context, sessions []domain.Session) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("Error rolling back save: %v", rbErr)
			}
		}
	}()

	for _, table := range []string{"queue_items", "devices", "sessions"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insertSession, err := tx.PrepareContext(ctx, r.q(`
		INSERT INTO sessions (id, position, hostcode, business_name, slogan, flyer_url, last_played, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare session insert: %w", err)
	}
	defer insertSession.Close()

	insertDevice, err := tx.PrepareContext(ctx, r.q(`
		INSERT INTO devices (session_id, position, id, name, user_agent, created_at, last_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare device insert: %w", err)
	}
	defer insertDevice.Close()

	insertItem, err := tx.PrepareContext(ctx, r.q(`
		INSERT INTO queue_items (session_id, position, id, title, genre, username, photo_url, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`))
	if err != nil {
		return fmt.Errorf("failed to prepare queue insert: %w", err)
	}
	defer insertItem.Close()

	for pos, s := range sessions {
		if _, err = insertSession.ExecContext(ctx, s.ID, pos, s.Hostcode, s.Business.BusinessName, s.Business.Slogan,
			s.Business.FlyerURL, s.LastPlayed, s.Version, toUnixNano(s.CreatedAt), toUnixNano(s.UpdatedAt)); err != nil {
			return fmt.Errorf("failed to insert session %s: %w", s.ID, err)
		}
		for i, d := range s.Devices {
			if _, err = insertDevice.ExecContext(ctx, s.ID, i, d.ID, d.Name, d.UserAgent,
				toUnixNano(d.CreatedAt), toUnixNano(d.LastActive)); err != nil {
				return fmt.Errorf("failed to insert device %s: %w", d.ID, err)
			}
		}
		for i, item := range s.Queue {
			var username, photoURL, message sql.NullString
			if u := item.SubmittedBy; u != nil {
				username = sql.NullString{String: u.Username, Valid: true}
				photoURL = sql.NullString{String: u.PhotoURL, Valid: true}
				message = sql.NullString{String: u.Message, Valid: true}
			}
			if _, err = insertItem.ExecContext(ctx, s.ID, i, item.ID, item.Title, item.Genre,
				username, photoURL, message); err != nil {
				return fmt.Errorf("failed to insert queue item %s: %w", item.ID, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sessions: %w", err)
	}
	return nil
}

// rebind rewrites ? placeholders to $n for drivers that need numbered
// parameters.
func rebind(driver, query string) string {
	if driver != DriverPgx {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
