// Package docstore is the document database the services write to. It mirrors
// the subset of Firestore the game backend relies on: keyed documents, merge
// writes, atomic increments, transactions with retry on contention and simple
// ordered queries.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNotFound is returned by Update on a document that does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned by Tx.Create on a document that exists.
	ErrAlreadyExists = errors.New("document already exists")
	// ErrConflict means a transaction kept losing to concurrent writers and
	// gave up. The caller may retry after re-reading state.
	ErrConflict = errors.New("transaction aborted by concurrent writes")
	// ErrReadAfterWrite is returned by Tx.Get once the transaction has
	// buffered a write.
	ErrReadAfterWrite = errors.New("transaction reads must precede writes")
)

const DefaultMaxAttempts = 5

// Key addresses one document. Collection may be a nested path such as
// "apps/aray/users".
type Key struct {
	Collection string
	ID         string
}

func (k Key) String() string {
	return k.Collection + "/" + k.ID
}

// Fields is the data of a document. Values are strings, bools, int64,
// float64, time.Time, nil, or one of the write sentinels below.
type Fields map[string]any

type SetMode int

const (
	// Replace overwrites the whole document.
	Replace SetMode = iota
	// Merge only touches the provided fields and creates the document if needed.
	Merge
)

type serverTimestamp struct{}

// ServerTimestamp is replaced by the store's commit time.
var ServerTimestamp any = serverTimestamp{}

type increment struct {
	n int64
}

// Increment adds n to the stored integer field atomically. A missing field
// counts as zero.
func Increment(n int64) any {
	return increment{n: n}
}

type Filter struct {
	Field string
	// Op is one of "==", "!=", "<", "<=", ">", ">=".
	Op    string
	Value any
}

type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Desc       bool
	Limit      int
}

// Tx is the view of the store inside RunTransaction. All reads must happen
// before the first write.
type Tx interface {
	Get(key Key) (*Snapshot, error)
	Set(key Key, fields Fields, mode SetMode) error
	Update(key Key, fields Fields) error
	Create(key Key, fields Fields) error
	Delete(key Key) error
}

// TxFunc may be invoked several times when the store retries a transaction,
// so it must not have side effects outside the Tx.
type TxFunc func(ctx context.Context, tx Tx) error

type Store interface {
	Get(ctx context.Context, key Key) (*Snapshot, error)
	GetAll(ctx context.Context, keys []Key) ([]*Snapshot, error)
	Set(ctx context.Context, key Key, fields Fields, mode SetMode) error
	Update(ctx context.Context, key Key, fields Fields) error
	Delete(ctx context.Context, key Key) error
	RunTransaction(ctx context.Context, fn TxFunc) error
	Query(ctx context.Context, q Query) ([]*Snapshot, error)
	Close() error
}

type opKind int

const (
	opSet opKind = iota
	opMerge
	opUpdate
	opCreate
	opDelete
)

type write struct {
	key    Key
	op     opKind
	fields Fields
}

func setOp(mode SetMode) opKind {
	if mode == Merge {
		return opMerge
	}
	return opSet
}

// addSaturating clamps at the int64 bounds the way Firestore's integer
// increment does.
func addSaturating(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

// apply computes the document produced by w on top of current. exists
// reports whether the document is present after the write.
func apply(current Fields, found bool, w write, now time.Time) (Fields, bool, error) {
	switch w.op {
	case opDelete:
		return nil, false, nil
	case opUpdate:
		if !found {
			return nil, false, fmt.Errorf("update %s: %w", w.key, ErrNotFound)
		}
	case opCreate:
		if found {
			return nil, false, fmt.Errorf("create %s: %w", w.key, ErrAlreadyExists)
		}
	}

	next := Fields{}
	if w.op == opMerge || w.op == opUpdate {
		for k, v := range current {
			next[k] = v
		}
	}
	for k, v := range w.fields {
		switch val := v.(type) {
		case serverTimestamp:
			next[k] = now
		case increment:
			base := int64(0)
			if w.op == opMerge || w.op == opUpdate {
				base, _ = toInt64(current[k])
			}
			next[k] = addSaturating(base, val.n)
		default:
			next[k] = v
		}
	}
	return next, true, nil
}
