// Package handler implements the service-side executeCommand dispatch:
// a registry of named handlers, keyed by the resolved command chain,
// invoked once the parser produces an Invocation.
package handler

import (
	"fmt"
	"sync"

	"github.com/apparata/appconsole/internal/invocation"
	"github.com/apparata/appconsole/internal/session"
	"github.com/apparata/appconsole/internal/wire"
)

// Func executes one resolved Invocation, writing any streamed responses
// to conn before returning.
type Func func(conn *wire.Conn, inv invocation.Invocation) error

// Registry maps a dotted command-chain key to the Func that executes
// it. Unlike the teacher's package-global plugin table, Registry is
// constructor-injected per spec.md §9 so tests can build an isolated
// instance instead of mutating shared state.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Func
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Func{}}
}

// Register associates commands (the resolved chain, e.g.
// []string{"stuff", "process"}) with fn.
func (r *Registry) Register(commands []string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[key(commands)] = fn
}

// Handle implements session.Handler by dispatching on inv.Commands.
func (r *Registry) Handle(conn *wire.Conn, inv invocation.Invocation) error {
	r.mu.RLock()
	fn, ok := r.handlers[key(inv.Commands)]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("handler: no handler registered for %v", inv.Commands)
	}
	return fn(conn, inv)
}

var _ session.Handler = (*Registry)(nil)

func key(commands []string) string {
	k := ""
	for i, c := range commands {
		if i > 0 {
			k += "."
		}
		k += c
	}
	return k
}
