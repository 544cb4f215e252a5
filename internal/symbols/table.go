// Package symbols holds the ordered name → value table that native bindings
// publish and the namespace remapper consumes.
package symbols

import (
	"errors"
	"fmt"
)

// ErrEmptyName is returned when a symbol is registered without a name.
var ErrEmptyName = errors.New("symbols: empty symbol name")

// Table is an insertion-ordered mapping from symbol names to values.
// Values are opaque: function references, integer or string constants,
// or nested constant groups. They are never copied or inspected.
type Table struct {
	keys   []string
	values map[string]any
}

// New creates an empty table.
func New() *Table {
	return &Table{values: make(map[string]any)}
}

// Set stores value under name. Re-setting an existing name replaces the
// value but keeps its original position.
func (t *Table) Set(name string, value any) error {
	if name == "" {
		return ErrEmptyName
	}
	if t.values == nil {
		t.values = make(map[string]any)
	}
	if _, ok := t.values[name]; !ok {
		t.keys = append(t.keys, name)
	}
	t.values[name] = value
	return nil
}

// MustSet is Set for static tables built at init time.
func (t *Table) MustSet(name string, value any) {
	if err := t.Set(name, value); err != nil {
		panic(fmt.Sprintf("symbols: %v", err))
	}
}

// Get returns the value stored under name, or nil.
func (t *Table) Get(name string) any {
	if t == nil {
		return nil
	}
	return t.values[name]
}

// Lookup returns the value stored under name and whether it exists.
func (t *Table) Lookup(name string) (any, bool) {
	if t == nil {
		return nil, false
	}
	v, ok := t.values[name]
	return v, ok
}

// Has reports whether name is present.
func (t *Table) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Len returns the number of symbols.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the names in insertion order. The slice is a copy.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Range calls fn for every symbol in insertion order until fn returns false.
func (t *Table) Range(fn func(name string, value any) bool) {
	if t == nil {
		return
	}
	for _, k := range t.keys {
		if !fn(k, t.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy. Values are shared with the receiver.
func (t *Table) Clone() *Table {
	c := New()
	if t == nil {
		return c
	}
	c.keys = make([]string, len(t.keys))
	copy(c.keys, t.keys)
	for k, v := range t.values {
		c.values[k] = v
	}
	return c
}
