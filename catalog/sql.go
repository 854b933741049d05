/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"dirpx.dev/dresult/apis"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

const (
	// DefaultTable is the table SQL reads unless WithTable says otherwise.
	DefaultTable = "dresult_messages"

	defaultLookupTimeout = 2 * time.Second

	createTableSQL = `
	   CREATE TABLE IF NOT EXISTS %s (
	       code    TEXT NOT NULL,
	       locale  TEXT NOT NULL,
	       message TEXT NOT NULL,
	       PRIMARY KEY (code, locale)
	   )`

	upsertSQL = `
    INSERT INTO %s (code, locale, message) VALUES (?, ?, ?)
    ON CONFLICT (code, locale) DO UPDATE SET message = excluded.message`

	selectSQL = `SELECT locale, message FROM %s WHERE code = ?`

	deleteSQL = `DELETE FROM %s WHERE code = ? AND locale = ?`
)

var tableRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ErrTableName is returned by NewSQL for table names that are not plain
// identifiers.
var ErrTableName = errors.New("dresult: invalid message table name")

var _ apis.Source = (*SQL)(nil)

// SQL is a message source backed by a database table with one row per
// (code, locale). Statements use "?" placeholders (SQLite, MySQL).
type SQL struct {
	db      *sql.DB
	table   string
	def     language.Tag
	timeout time.Duration
	log     zerolog.Logger

	upsert string
	query  string
	del    string
}

// SQLOption configures an SQL source.
type SQLOption func(*SQL)

// WithTable sets the table name.
func WithTable(name string) SQLOption {
	return func(s *SQL) { s.table = name }
}

// WithFallbackLocale sets the locale lookups fall back to. Default English.
func WithFallbackLocale(tag language.Tag) SQLOption {
	return func(s *SQL) { s.def = tag }
}

// WithLookupTimeout bounds each Lookup query. Default 2s.
func WithLookupTimeout(d time.Duration) SQLOption {
	return func(s *SQL) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithSQLLogger sets the logger used to report failed lookups.
func WithSQLLogger(l zerolog.Logger) SQLOption {
	return func(s *SQL) { s.log = l }
}

// NewSQL creates a source on db. It does not touch the database; call
// Migrate to create the table.
func NewSQL(db *sql.DB, opts ...SQLOption) (*SQL, error) {
	s := &SQL{
		db:      db,
		table:   DefaultTable,
		def:     language.English,
		timeout: defaultLookupTimeout,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if !tableRe.MatchString(s.table) {
		return nil, fmt.Errorf("%w: %q", ErrTableName, s.table)
	}
	s.upsert = fmt.Sprintf(upsertSQL, s.table)
	s.query = fmt.Sprintf(selectSQL, s.table)
	s.del = fmt.Sprintf(deleteSQL, s.table)
	return s, nil
}

// Migrate creates the message table if it does not exist.
func (s *SQL) Migrate(ctx context.Context) error {
	stmt := fmt.Sprintf(createTableSQL, s.table)
	s.log.Debug().Str("sql", stmt).Msg("Executing SQL statement")
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

// Put stores or replaces one template.
func (s *SQL) Put(ctx context.Context, code string, tag language.Tag, msg string) error {
	if _, err := s.db.ExecContext(ctx, s.upsert, code, tag.String(), msg); err != nil {
		return fmt.Errorf("put %s/%s: %w", tag, code, err)
	}
	return nil
}

// Delete removes one template. Deleting a missing row is not an error.
func (s *SQL) Delete(ctx context.Context, code string, tag language.Tag) error {
	if _, err := s.db.ExecContext(ctx, s.del, code, tag.String()); err != nil {
		return fmt.Errorf("delete %s/%s: %w", tag, code, err)
	}
	return nil
}

// Import copies every template of c into the table in one transaction and
// returns the number of rows written.
func (s *SQL) Import(ctx context.Context, c *Catalog) (n int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.log.Debug().Err(rbErr).Msg("Failed to rollback transaction")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, s.upsert)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	for _, tag := range c.Locales() {
		for code, msg := range c.Messages(tag) {
			if _, err := stmt.ExecContext(ctx, code, tag.String(), msg); err != nil {
				return n, fmt.Errorf("import %s/%s: %w", tag, code, err)
			}
			n++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	committed = true

	s.log.Info().Int("rows", n).Str("table", s.table).Msg("Catalog imported")
	return n, nil
}

// LookupContext returns the template for code, walking the locale chain of
// tag and then of the fallback locale.
func (s *SQL) LookupContext(ctx context.Context, code string, tag language.Tag) (string, bool, error) {
	rows, err := s.db.QueryContext(ctx, s.query, code)
	if err != nil {
		return "", false, fmt.Errorf("query %s: %w", code, err)
	}
	defer rows.Close()

	byLocale := make(map[string]string)
	for rows.Next() {
		var loc, msg string
		if err := rows.Scan(&loc, &msg); err != nil {
			return "", false, fmt.Errorf("scan %s: %w", code, err)
		}
		byLocale[loc] = msg
	}
	if err := rows.Err(); err != nil {
		return "", false, fmt.Errorf("query %s: %w", code, err)
	}

	for _, key := range Chain(tag, s.def) {
		if msg, ok := byLocale[key]; ok {
			return msg, true, nil
		}
	}
	return "", false, nil
}

// Lookup implements apis.Source. Database errors count as a miss and are
// logged at warn level.
func (s *SQL) Lookup(code string, tag language.Tag) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	msg, ok, err := s.LookupContext(ctx, code, tag)
	if err != nil {
		s.log.Warn().Err(err).Str("code", code).Msg("message lookup failed")
		return "", false
	}
	return msg, ok
}
