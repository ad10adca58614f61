package alias

import (
	"fmt"

	"github.com/arloliu/wyre/errs"
	"github.com/arloliu/wyre/value"
)

// Table is the decode-side counterpart to Cache: it assigns sequential
// alias identifiers to Special::Define records in the order they are seen
// and resolves Alias records against them, per spec §4.6 ("the decoder
// assigns alias identifiers in the order Define records are seen").
//
// A Table is not safe for concurrent use; the spec assumes single-reader
// ownership per stream (spec §5).
type Table struct {
	next    uint64
	entries map[uint64]value.Value
}

// NewTable creates an empty decode-side alias table.
func NewTable() *Table {
	return &Table{entries: make(map[uint64]value.Value)}
}

// Define records v under the next sequential alias id and returns that id.
func (t *Table) Define(v value.Value) uint64 {
	id := t.next
	t.next++
	t.entries[id] = v
	return id
}

// Resolve looks up the value bound to id. It returns errs.ErrUnknownAlias
// if id has never been defined or has since been forgotten.
func (t *Table) Resolve(id uint64) (value.Value, error) {
	v, ok := t.entries[id]
	if !ok {
		return value.Value{}, fmt.Errorf("id %d: %w", id, errs.ErrUnknownAlias)
	}
	return v, nil
}

// Forget evicts id from the table. It returns errs.ErrForgetUnknown if id
// is not currently defined.
func (t *Table) Forget(id uint64) error {
	if _, ok := t.entries[id]; !ok {
		return fmt.Errorf("id %d: %w", id, errs.ErrForgetUnknown)
	}
	delete(t.entries, id)
	return nil
}
