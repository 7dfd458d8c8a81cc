package docstore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite keeps every document as a JSON blob in one table. The pool is
// limited to a single connection, which serializes transactions, so they
// never conflict and are never retried.
type SQLite struct {
	conn *sql.DB
	now  func() time.Time
}

var _ Store = (*SQLite)(nil)

func OpenSQLite(dbPath string) (*SQLite, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	s := &SQLite{conn: conn, now: time.Now}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection  TEXT NOT NULL,
			id          TEXT NOT NULL,
			data        TEXT NOT NULL,
			update_time TEXT NOT NULL,
			PRIMARY KEY (collection, id)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating documents table: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func encodeFields(f Fields) (string, error) {
	out := make(map[string]any, len(f))
	for k, v := range f {
		if t, ok := v.(time.Time); ok {
			out[k] = t.UTC().Format(time.RFC3339Nano)
			continue
		}
		out[k] = v
	}
	b, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeFields(raw string) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	out := make(Fields, len(data))
	for k, v := range data {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				out[k] = i
				continue
			}
			f, _ := n.Float64()
			out[k] = f
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (s *SQLite) load(ctx context.Context, q querier, key Key) (*Snapshot, error) {
	var raw, updated string
	err := q.QueryRowContext(ctx,
		`SELECT data, update_time FROM documents WHERE collection = ? AND id = ?`,
		key.Collection, key.ID,
	).Scan(&raw, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return &Snapshot{Key: key}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: loading %s: %w", key, err)
	}
	data, err := decodeFields(raw)
	if err != nil {
		return nil, fmt.Errorf("sqlite: decoding %s: %w", key, err)
	}
	ut, _ := time.Parse(time.RFC3339Nano, updated)
	return &Snapshot{Key: key, Exists: true, Data: data, UpdateTime: ut}, nil
}

func (s *SQLite) store(ctx context.Context, q querier, w write) error {
	cur, err := s.load(ctx, q, w.key)
	if err != nil {
		return err
	}
	now := s.now()
	data, exists, err := apply(cur.Data, cur.Exists, w, now)
	if err != nil {
		return err
	}
	if !exists {
		_, err = q.ExecContext(ctx,
			`DELETE FROM documents WHERE collection = ? AND id = ?`,
			w.key.Collection, w.key.ID)
		return err
	}
	raw, err := encodeFields(data)
	if err != nil {
		return fmt.Errorf("sqlite: encoding %s: %w", w.key, err)
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, update_time) VALUES (?, ?, ?, ?)
		ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, update_time = excluded.update_time`,
		w.key.Collection, w.key.ID, raw, now.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: writing %s: %w", w.key, err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, key Key) (*Snapshot, error) {
	return s.load(ctx, s.conn, key)
}

func (s *SQLite) GetAll(ctx context.Context, keys []Key) ([]*Snapshot, error) {
	result := make([]*Snapshot, len(keys))
	for i, k := range keys {
		snap, err := s.load(ctx, s.conn, k)
		if err != nil {
			return nil, err
		}
		result[i] = snap
	}
	return result, nil
}

func (s *SQLite) Set(ctx context.Context, key Key, fields Fields, mode SetMode) error {
	return s.writeAll(ctx, []write{{key: key, op: setOp(mode), fields: fields}})
}

func (s *SQLite) Update(ctx context.Context, key Key, fields Fields) error {
	return s.writeAll(ctx, []write{{key: key, op: opUpdate, fields: fields}})
}

func (s *SQLite) Delete(ctx context.Context, key Key) error {
	return s.writeAll(ctx, []write{{key: key, op: opDelete}})
}

// writeAll runs read-modify-write for each write inside one SQL transaction
// so increments and merges stay atomic.
func (s *SQLite) writeAll(ctx context.Context, writes []write) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()
	for _, w := range writes {
		if err := s.store(ctx, tx, w); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) RunTransaction(ctx context.Context, fn TxFunc) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin: %w", err)
	}
	defer tx.Rollback()

	stx := &sqliteTx{ctx: ctx, store: s, tx: tx}
	if err := fn(ctx, stx); err != nil {
		return err
	}
	for _, w := range stx.writes {
		if err := s.store(ctx, tx, w); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLite) Query(ctx context.Context, q Query) ([]*Snapshot, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, data, update_time FROM documents WHERE collection = ?`, q.Collection)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query %s: %w", q.Collection, err)
	}
	defer rows.Close()

	docs := make([]*Snapshot, 0)
	for rows.Next() {
		var id, raw, updated string
		if err := rows.Scan(&id, &raw, &updated); err != nil {
			return nil, fmt.Errorf("sqlite: scanning %s: %w", q.Collection, err)
		}
		data, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("sqlite: decoding %s/%s: %w", q.Collection, id, err)
		}
		ut, _ := time.Parse(time.RFC3339Nano, updated)
		docs = append(docs, &Snapshot{
			Key:        Key{Collection: q.Collection, ID: id},
			Exists:     true,
			Data:       data,
			UpdateTime: ut,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating %s: %w", q.Collection, err)
	}
	return runQuery(docs, q), nil
}

func (s *SQLite) Close() error {
	return s.conn.Close()
}

type sqliteTx struct {
	ctx    context.Context
	store  *SQLite
	tx     *sql.Tx
	writes []write
}

func (t *sqliteTx) Get(key Key) (*Snapshot, error) {
	if len(t.writes) > 0 {
		return nil, ErrReadAfterWrite
	}
	return t.store.load(t.ctx, t.tx, key)
}

func (t *sqliteTx) Set(key Key, fields Fields, mode SetMode) error {
	t.writes = append(t.writes, write{key: key, op: setOp(mode), fields: copyFields(fields)})
	return nil
}

func (t *sqliteTx) Update(key Key, fields Fields) error {
	t.writes = append(t.writes, write{key: key, op: opUpdate, fields: copyFields(fields)})
	return nil
}

func (t *sqliteTx) Create(key Key, fields Fields) error {
	t.writes = append(t.writes, write{key: key, op: opCreate, fields: copyFields(fields)})
	return nil
}

func (t *sqliteTx) Delete(key Key) error {
	t.writes = append(t.writes, write{key: key, op: opDelete})
	return nil
}
