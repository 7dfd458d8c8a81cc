package docstore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore adapts a *firestore.Client to Store. Transactions use the
// client's own optimistic retry loop.
type Firestore struct {
	client      *firestore.Client
	maxAttempts int
}

var _ Store = (*Firestore)(nil)

func NewFirestore(client *firestore.Client, maxAttempts int) *Firestore {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Firestore{
		client:      client,
		maxAttempts: maxAttempts,
	}
}

func (f *Firestore) ref(key Key) *firestore.DocumentRef {
	return f.client.Collection(key.Collection).Doc(key.ID)
}

func toFirestoreData(fields Fields) map[string]any {
	data := make(map[string]any, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case serverTimestamp:
			data[k] = firestore.ServerTimestamp
		case increment:
			data[k] = firestore.Increment(val.n)
		default:
			data[k] = v
		}
	}
	return data
}

func toFirestoreUpdates(fields Fields) []firestore.Update {
	data := toFirestoreData(fields)
	updates := make([]firestore.Update, 0, len(data))
	for k, v := range data {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	return updates
}

func fromFirestore(key Key, doc *firestore.DocumentSnapshot) *Snapshot {
	if doc == nil || !doc.Exists() {
		return &Snapshot{Key: key}
	}
	return &Snapshot{
		Key:        key,
		Exists:     true,
		Data:       doc.Data(),
		UpdateTime: doc.UpdateTime,
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func translate(op string, key Key, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s %s: %w", op, key, ErrNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("%s %s: %w", op, key, ErrAlreadyExists)
	case codes.Aborted:
		return fmt.Errorf("%s %s: %w: %v", op, key, ErrConflict, err)
	}
	return fmt.Errorf("%s %s: %w", op, key, err)
}

func (f *Firestore) Get(ctx context.Context, key Key) (*Snapshot, error) {
	doc, err := f.ref(key).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return &Snapshot{Key: key}, nil
		}
		return nil, translate("get", key, err)
	}
	return fromFirestore(key, doc), nil
}

func (f *Firestore) GetAll(ctx context.Context, keys []Key) ([]*Snapshot, error) {
	refs := make([]*firestore.DocumentRef, len(keys))
	for i, k := range keys {
		refs[i] = f.ref(k)
	}
	docs, err := f.client.GetAll(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("get all: %w", err)
	}
	result := make([]*Snapshot, len(keys))
	for i, k := range keys {
		result[i] = fromFirestore(k, docs[i])
	}
	return result, nil
}

func (f *Firestore) Set(ctx context.Context, key Key, fields Fields, mode SetMode) error {
	var err error
	if mode == Merge {
		_, err = f.ref(key).Set(ctx, toFirestoreData(fields), firestore.MergeAll)
	} else {
		_, err = f.ref(key).Set(ctx, toFirestoreData(fields))
	}
	if err != nil {
		return translate("set", key, err)
	}
	return nil
}

func (f *Firestore) Update(ctx context.Context, key Key, fields Fields) error {
	if _, err := f.ref(key).Update(ctx, toFirestoreUpdates(fields)); err != nil {
		return translate("update", key, err)
	}
	return nil
}

func (f *Firestore) Delete(ctx context.Context, key Key) error {
	if _, err := f.ref(key).Delete(ctx); err != nil {
		return translate("delete", key, err)
	}
	return nil
}

func (f *Firestore) RunTransaction(ctx context.Context, fn TxFunc) error {
	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(ctx, &firestoreTx{store: f, tx: tx})
	}, firestore.MaxAttempts(f.maxAttempts))
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.Aborted {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

func (f *Firestore) Query(ctx context.Context, q Query) ([]*Snapshot, error) {
	query := f.client.Collection(q.Collection).Query
	for _, filter := range q.Filters {
		query = query.Where(filter.Field, filter.Op, filter.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()
	result := make([]*Snapshot, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", q.Collection, err)
		}
		result = append(result, fromFirestore(Key{Collection: q.Collection, ID: doc.Ref.ID}, doc))
	}
	return result, nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}

type firestoreTx struct {
	store *Firestore
	tx    *firestore.Transaction
}

func (t *firestoreTx) Get(key Key) (*Snapshot, error) {
	doc, err := t.tx.Get(t.store.ref(key))
	if err != nil {
		if isNotFound(err) {
			return &Snapshot{Key: key}, nil
		}
		return nil, err
	}
	return fromFirestore(key, doc), nil
}

func (t *firestoreTx) Set(key Key, fields Fields, mode SetMode) error {
	if mode == Merge {
		return t.tx.Set(t.store.ref(key), toFirestoreData(fields), firestore.MergeAll)
	}
	return t.tx.Set(t.store.ref(key), toFirestoreData(fields))
}

func (t *firestoreTx) Update(key Key, fields Fields) error {
	return t.tx.Update(t.store.ref(key), toFirestoreUpdates(fields))
}

func (t *firestoreTx) Create(key Key, fields Fields) error {
	return t.tx.Create(t.store.ref(key), toFirestoreData(fields))
}

func (t *firestoreTx) Delete(key Key) error {
	return t.tx.Delete(t.store.ref(key))
}
