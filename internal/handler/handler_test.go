package handler

import (
	"net"
	"testing"

	"github.com/rs/zerolog"

	"github.com/apparata/appconsole/internal/invocation"
	"github.com/apparata/appconsole/internal/wire"
)

func TestRegistryDispatchesByCommandChain(t *testing.T) {
	r := NewRegistry()
	called := false
	r.Register([]string{"stuff", "echo"}, func(conn *wire.Conn, inv invocation.Invocation) error {
		called = true
		return nil
	})

	nc, _ := net.Pipe()
	conn := wire.NewConn(nc, wire.RoleService, zerolog.Nop())
	inv := invocation.New([]string{"stuff", "echo"}, nil)
	if err := r.Handle(conn, inv); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !called {
		t.Fatal("registered handler was not invoked")
	}
}

func TestRegistryNoHandlerRegistered(t *testing.T) {
	r := NewRegistry()
	nc, _ := net.Pipe()
	conn := wire.NewConn(nc, wire.RoleService, zerolog.Nop())
	inv := invocation.New([]string{"unknown"}, nil)
	if err := r.Handle(conn, inv); err == nil {
		t.Fatal("expected error for unregistered command chain")
	}
}
