package stub

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/on-the-ground/behavior_testkit/actor"
)

const (
	childTable = "children"
	nameIndex  = "id"
)

// child is a row of the registry: one live child, or adapter, per name.
type child struct {
	Name     string
	Ref      actor.Ref
	Behavior actor.AnyBehavior
	Props    actor.Props
	Inbox    *Inbox
}

var childSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		childTable: {
			Name: childTable,
			Indexes: map[string]*memdb.IndexSchema{
				nameIndex: {
					Name:    nameIndex,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Name"},
				},
			},
		},
	},
}

// registry tracks the live children of one context by name.
type registry struct {
	db *memdb.MemDB
}

func newRegistry() (*registry, error) {
	db, err := memdb.NewMemDB(childSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to create child registry: %w", err)
	}
	return &registry{db: db}, nil
}

func (r *registry) lookup(name string) (*child, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(childTable, nameIndex, name)
	if err != nil || raw == nil {
		return nil, err
	}
	return raw.(*child), nil
}

// insertIfAbsent adds c unless its name is taken.
func (r *registry) insertIfAbsent(c *child) (inserted bool, err error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	old, err := txn.First(childTable, nameIndex, c.Name)
	if err != nil {
		return false, err
	} else if old != nil {
		return false, nil
	}

	if err := txn.Insert(childTable, c); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

// removeIf deletes the row named name if matches accepts it.
func (r *registry) removeIf(name string, matches func(*child) bool) (removed bool, err error) {
	txn := r.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(childTable, nameIndex, name)
	if err != nil {
		return false, err
	} else if raw == nil || !matches(raw.(*child)) {
		return false, nil
	}

	if err := txn.Delete(childTable, raw); err != nil {
		return false, err
	}
	txn.Commit()
	return true, nil
}

// list returns every row ordered by name.
func (r *registry) list() ([]*child, error) {
	txn := r.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(childTable, nameIndex)
	if err != nil {
		return nil, err
	}
	var children []*child
	for raw := it.Next(); raw != nil; raw = it.Next() {
		children = append(children, raw.(*child))
	}
	return children, nil
}
