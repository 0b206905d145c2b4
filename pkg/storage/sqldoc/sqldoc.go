// Package sqldoc stores the person list in a SQL database. Every save
// replaces all rows inside one transaction, so the tables always hold exactly
// one complete list.
package sqldoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/papercomputeco/recruit/pkg/model"
	"github.com/papercomputeco/recruit/pkg/storage"
)

// Placeholders selects the bind parameter style of a SQL dialect.
type Placeholders int

const (
	// Question binds with "?" (SQLite).
	Question Placeholders = iota

	// Dollar binds with "$1", "$2", ... (PostgreSQL).
	Dollar
)

const savedAtKey = "saved_at"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS recruit_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS persons (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL,
		comment TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS person_tags (
		person_position INTEGER NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (person_position, position)
	)`,
}

// Store implements storage.Driver on a database/sql handle.
type Store struct {
	db     *sql.DB
	ph     Placeholders
	source string
	opts   storage.Options
	logger *zap.Logger
}

// New wraps db and creates the tables if needed. source names the database
// in load errors and must not contain credentials.
func New(ctx context.Context, db *sql.DB, ph Placeholders, source string, logger *zap.Logger, opts ...storage.Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Store{
		db:     db,
		ph:     ph,
		source: source,
		opts:   storage.ApplyOptions(opts...),
		logger: logger,
	}, nil
}

// DB returns the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Load reads the saved list. It returns nil when no save has happened yet.
func (s *Store) Load(ctx context.Context) (*model.Snapshot, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT value FROM recruit_meta WHERE key = ?`), savedAtKey,
	).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("no saved persons", zap.String("source", s.source))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading save marker: %w", err)
	}

	doc, err := s.readDocument(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := doc.Snapshot(s.opts.Identity)
	if err != nil {
		return nil, &storage.LoadError{Source: s.source, Err: err}
	}

	s.logger.Debug("loaded persons",
		zap.String("source", s.source),
		zap.String("saved_at", savedAt),
		zap.Int("count", len(snap.Persons)),
	)
	return snap, nil
}

func (s *Store) readDocument(ctx context.Context) (storage.Document, error) {
	tags, err := s.readTags(ctx)
	if err != nil {
		return storage.Document{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, id, name, phone, email, address, comment FROM persons ORDER BY position`)
	if err != nil {
		return storage.Document{}, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	doc := storage.Document{Persons: []storage.PersonRecord{}}
	for rows.Next() {
		var (
			pos int64
			r   storage.PersonRecord
		)
		if err := rows.Scan(&pos, &r.ID, &r.Name, &r.Phone, &r.Email, &r.Address, &r.Comment); err != nil {
			return storage.Document{}, fmt.Errorf("scanning person: %w", err)
		}
		r.Tags = tags[pos]
		if r.Tags == nil {
			r.Tags = []string{}
		}
		doc.Persons = append(doc.Persons, r)
	}
	if err := rows.Err(); err != nil {
		return storage.Document{}, fmt.Errorf("iterating persons: %w", err)
	}
	return doc, nil
}

func (s *Store) readTags(ctx context.Context) (map[int64][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT person_position, name FROM person_tags ORDER BY person_position, position`)
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var (
			pos  int64
			name string
		)
		if err := rows.Scan(&pos, &name); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags[pos] = append(tags[pos], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}

// Save replaces every stored row with snap in a single transaction.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	doc := storage.NewDocument(snap)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// No-op once committed.
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM person_tags`); err != nil {
		return fmt.Errorf("clearing tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM persons`); err != nil {
		return fmt.Errorf("clearing persons: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		s.rebind(`DELETE FROM recruit_meta WHERE key = ?`), savedAtKey,
	); err != nil {
		return fmt.Errorf("clearing save marker: %w", err)
	}

	insertPerson := s.rebind(`INSERT INTO persons
		(position, id, name, phone, email, address, comment)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	insertTag := s.rebind(`INSERT INTO person_tags (person_position, position, name) VALUES (?, ?, ?)`)

	for i, r := range doc.Persons {
		if _, err := tx.ExecContext(ctx, insertPerson,
			i, r.ID, r.Name, r.Phone, r.Email, r.Address, r.Comment,
		); err != nil {
			return fmt.Errorf("inserting person %q: %w", r.Name, err)
		}
		for j, name := range r.Tags {
			if _, err := tx.ExecContext(ctx, insertTag, i, j, name); err != nil {
				return fmt.Errorf("inserting tag %q: %w", name, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx,
		s.rebind(`INSERT INTO recruit_meta (key, value) VALUES (?, ?)`),
		savedAtKey, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("writing save marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	s.logger.Debug("saved persons",
		zap.String("source", s.source),
		zap.Int("count", len(doc.Persons)),
	)
	return nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites "?" placeholders for the store's dialect.
func (s *Store) rebind(query string) string {
	if s.ph != Dollar {
		return query
	}

	var b strings.Builder
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
