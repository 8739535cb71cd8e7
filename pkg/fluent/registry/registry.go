// Package registry provides an in-memory fluent.Resolver: subjects stored
// under string ids in a go-memdb table, looked up by Chain.Change.
package registry

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/ib-77/fluent/pkg/fluent"
)

const (
	table   = "subjects"
	idIndex = "id"
)

type entry struct {
	ID      string
	Subject any
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		table: {
			Name: table,
			Indexes: map[string]*memdb.IndexSchema{
				idIndex: {
					Name:    idIndex,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
			},
		},
	},
}

var _ fluent.Resolver = (*Registry)(nil)

// Registry stores subjects by id. It is safe for concurrent use.
type Registry struct {
	db *memdb.MemDB
}

func New() (*Registry, error) {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}
	return &Registry{db: db}, nil
}

// Set registers subject under id, replacing any previous entry.
func (r *Registry) Set(id string, subject any) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", fluent.ErrInvalidArgument)
	}
	if !fluent.IsSubject(subject) {
		return fmt.Errorf("%w: %s is not a subject", fluent.ErrInvalidTarget, fluent.TypeName(subject))
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(table, &entry{ID: id, Subject: subject}); err != nil {
		return fmt.Errorf("failed to register %s: %w", id, err)
	}
	txn.Commit()
	return nil
}

func (r *Registry) Has(id string) bool {
	_, ok, err := r.lookup(id)
	return err == nil && ok
}

func (r *Registry) Get(id string) (any, error) {
	subject, ok, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: no instance registered for %s", fluent.ErrNotRegistered, id)
	}
	return subject, nil
}

// Delete removes id. Deleting an unknown id is not an error.
func (r *Registry) Delete(id string) error {
	txn := r.db.Txn(true)
	defer txn.Abort()

	n, err := txn.DeleteAll(table, idIndex, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	if n > 0 {
		txn.Commit()
	}
	return nil
}

// IDs lists registered ids in ascending order.
func (r *Registry) IDs() ([]string, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, idIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list registry: %w", err)
	}

	ids := make([]string, 0)
	for raw := it.Next(); raw != nil; raw = it.Next() {
		ids = append(ids, raw.(*entry).ID)
	}
	return ids, nil
}

func (r *Registry) lookup(id string) (any, bool, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(table, idIndex, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s: %w", id, err)
	}
	if raw == nil {
		return nil, false, nil
	}
	return raw.(*entry).Subject, true, nil
}
