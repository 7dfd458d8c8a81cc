package docstore

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
)

type memDoc struct {
	data       Fields
	exists     bool
	version    uint64
	updateTime time.Time
}

// Memory is an in-process Store. Transactions are optimistic: reads record
// the version of each document and the commit fails, and is retried, when
// any of them changed in the meantime.
type Memory struct {
	mu          sync.Mutex
	docs        map[Key]*memDoc
	clock       uint64
	now         func() time.Time
	maxAttempts int
}

var _ Store = (*Memory)(nil)

type MemoryOption func(*Memory)

func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

func WithMaxAttempts(n int) MemoryOption {
	return func(m *Memory) {
		if n > 0 {
			m.maxAttempts = n
		}
	}
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		docs:        make(map[Key]*memDoc),
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) snapshot(key Key) (*Snapshot, uint64) {
	d, ok := m.docs[key]
	if !ok || !d.exists {
		var version uint64
		if ok {
			version = d.version
		}
		return &Snapshot{Key: key}, version
	}
	return &Snapshot{
		Key:        key,
		Exists:     true,
		Data:       copyFields(d.data),
		UpdateTime: d.updateTime,
	}, d.version
}

func (m *Memory) Get(ctx context.Context, key Key) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, _ := m.snapshot(key)
	return snap, nil
}

func (m *Memory) GetAll(ctx context.Context, keys []Key) ([]*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*Snapshot, len(keys))
	for i, k := range keys {
		result[i], _ = m.snapshot(k)
	}
	return result, nil
}

func (m *Memory) Set(ctx context.Context, key Key, fields Fields, mode SetMode) error {
	return m.commitWrites(ctx, []write{{key: key, op: setOp(mode), fields: fields}})
}

func (m *Memory) Update(ctx context.Context, key Key, fields Fields) error {
	return m.commitWrites(ctx, []write{{key: key, op: opUpdate, fields: fields}})
}

func (m *Memory) Delete(ctx context.Context, key Key) error {
	return m.commitWrites(ctx, []write{{key: key, op: opDelete}})
}

func (m *Memory) commitWrites(ctx context.Context, writes []write) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyLocked(writes)
}

// applyLocked validates every write before touching state so a failing
// write leaves the batch unapplied.
func (m *Memory) applyLocked(writes []write) error {
	now := m.now()
	type result struct {
		key    Key
		data   Fields
		exists bool
	}
	staged := make(map[Key]result)
	order := make([]Key, 0, len(writes))
	for _, w := range writes {
		cur, seen := staged[w.key]
		if !seen {
			d, ok := m.docs[w.key]
			cur = result{key: w.key}
			if ok && d.exists {
				cur.data = d.data
				cur.exists = true
			}
			order = append(order, w.key)
		}
		data, exists, err := apply(cur.data, cur.exists, w, now)
		if err != nil {
			return err
		}
		staged[w.key] = result{key: w.key, data: data, exists: exists}
	}
	for _, k := range order {
		r := staged[k]
		m.clock++
		m.docs[k] = &memDoc{
			data:       r.data,
			exists:     r.exists,
			version:    m.clock,
			updateTime: now,
		}
	}
	return nil
}

func (m *Memory) RunTransaction(ctx context.Context, fn TxFunc) error {
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		tx := &memTx{m: m, reads: make(map[Key]uint64)}
		if err := fn(ctx, tx); err != nil {
			return err
		}
		committed, err := m.commit(tx)
		if err != nil {
			return err
		}
		if committed {
			return nil
		}
		runtime.Gosched()
	}
	return fmt.Errorf("after %d attempts: %w", m.maxAttempts, ErrConflict)
}

func (m *Memory) commit(tx *memTx) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, version := range tx.reads {
		var current uint64
		if d, ok := m.docs[k]; ok {
			current = d.version
		}
		if current != version {
			return false, nil
		}
	}
	if len(tx.writes) == 0 {
		return true, nil
	}
	if err := m.applyLocked(tx.writes); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Memory) Query(ctx context.Context, q Query) ([]*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	docs := make([]*Snapshot, 0)
	for k := range m.docs {
		if k.Collection != q.Collection {
			continue
		}
		snap, _ := m.snapshot(k)
		docs = append(docs, snap)
	}
	m.mu.Unlock()
	return runQuery(docs, q), nil
}

func (m *Memory) Close() error {
	return nil
}

// Len reports how many documents currently exist in collection.
func (m *Memory) Len(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k, d := range m.docs {
		if k.Collection == collection && d.exists {
			n++
		}
	}
	return n
}

type memTx struct {
	m      *Memory
	reads  map[Key]uint64
	writes []write
}

func (t *memTx) Get(key Key) (*Snapshot, error) {
	if len(t.writes) > 0 {
		return nil, ErrReadAfterWrite
	}
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	snap, version := t.m.snapshot(key)
	if _, seen := t.reads[key]; !seen {
		t.reads[key] = version
	}
	return snap, nil
}

func (t *memTx) Set(key Key, fields Fields, mode SetMode) error {
	t.writes = append(t.writes, write{key: key, op: setOp(mode), fields: copyFields(fields)})
	return nil
}

func (t *memTx) Update(key Key, fields Fields) error {
	t.writes = append(t.writes, write{key: key, op: opUpdate, fields: copyFields(fields)})
	return nil
}

func (t *memTx) Create(key Key, fields Fields) error {
	t.writes = append(t.writes, write{key: key, op: opCreate, fields: copyFields(fields)})
	return nil
}

func (t *memTx) Delete(key Key) error {
	t.writes = append(t.writes, write{key: key, op: opDelete})
	return nil
}
