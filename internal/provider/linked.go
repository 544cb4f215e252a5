package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/agiangrant/sdl2/internal/symbols"
)

// linked holds tables registered by code compiled into the process, the
// equivalent of a statically linked binding.
var (
	linkedMu sync.RWMutex
	linked   = make(map[string]*symbols.Table)
)

// RegisterLinked makes table available to Linked providers under name.
// Registering the same name again replaces the table.
func RegisterLinked(name string, table *symbols.Table) {
	linkedMu.Lock()
	defer linkedMu.Unlock()
	linked[name] = table
}

// UnregisterLinked removes a registered table.
func UnregisterLinked(name string) {
	linkedMu.Lock()
	defer linkedMu.Unlock()
	delete(linked, name)
}

// Linked serves a table registered with RegisterLinked.
type Linked struct {
	Binding string
}

func (p *Linked) Name() string { return "linked" }

func (p *Linked) Open(ctx context.Context) (*Binding, error) {
	if p.Binding == "" {
		return nil, ErrNotConfigured
	}
	linkedMu.RLock()
	table, ok := linked[p.Binding]
	linkedMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no linked binding %q", p.Binding)
	}
	return NewBinding(p.Name(), p.Binding, table, nil), nil
}
