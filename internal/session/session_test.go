package session

import (
	"net"
	"testing"

	"github.com/rs/zerolog"

	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/invocation"
	"github.com/apparata/appconsole/internal/wire"
)

type recordingHandler struct {
	invocations []invocation.Invocation
}

func (h *recordingHandler) Handle(conn *wire.Conn, inv invocation.Invocation) error {
	h.invocations = append(h.invocations, inv)
	return nil
}

type recordingSink struct {
	console []string
}

func (s *recordingSink) ConsoleOutput(text string) { s.console = append(s.console, text) }
func (s *recordingSink) Screenshot(data []byte)    {}
func (s *recordingSink) File(msg FileMessage)      {}

func newHandshakedPair(t *testing.T) (*wire.Conn, *wire.Conn) {
	t.Helper()
	svcNC, cliNC := net.Pipe()
	svc := wire.NewConn(svcNC, wire.RoleService, zerolog.Nop())
	cli := wire.NewConn(cliNC, wire.RoleClient, zerolog.Nop())
	if err := svc.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err := cli.Prepare(); err != nil {
		t.Fatal(err)
	}
	errs := make(chan error, 2)
	go func() { errs <- svc.Handshake() }()
	go func() { errs <- cli.Handshake() }()
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
	}
	return svc, cli
}

func TestClientServiceSessionRoundTrip(t *testing.T) {
	svc, cli := newHandshakedPair(t)
	defer svc.Cancel()
	defer cli.Cancel()

	process := catalog.NewArgumentsCommand("process", "process a file", nil, nil, nil, false)
	stuff := catalog.NewSubcommandsCommand("stuff", "stuff commands", process)
	cat := catalog.NewCatalog(stuff)

	handler := &recordingHandler{}
	svcSession := NewServiceSession(svc, cat, GeneralInfo{InstanceName: "test"}, handler, zerolog.Nop())
	serverDone := make(chan error, 1)
	go func() { serverDone <- svcSession.Run() }()

	sink := &recordingSink{}
	cliSession := NewClientSession(cli, sink, zerolog.Nop())
	if err := cliSession.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if cliSession.Info.InstanceName != "test" {
		t.Fatalf("InstanceName = %q, want test", cliSession.Info.InstanceName)
	}
	if len(cliSession.Catalog.Commands) != 1 || cliSession.Catalog.Commands[0].Name != "stuff" {
		t.Fatalf("Catalog = %+v", cliSession.Catalog)
	}

	inv := invocation.New([]string{"stuff", "process"}, map[string]invocation.TypedValue{})
	if err := cliSession.ExecuteCommand(inv); err != nil {
		t.Fatalf("ExecuteCommand: %v", err)
	}
	if len(handler.invocations) != 1 {
		t.Fatalf("handler invocations = %d, want 1", len(handler.invocations))
	}

	cli.Cancel()
	<-serverDone
}

func TestTableAddForget(t *testing.T) {
	table := NewTable()
	svcNC, _ := net.Pipe()
	conn := wire.NewConn(svcNC, wire.RoleService, zerolog.Nop())
	id := table.Add(conn)
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
	table.Forget(id)
	if table.Len() != 0 {
		t.Fatalf("Len after Forget = %d, want 0", table.Len())
	}
}

func TestReconnectorDelayGrows(t *testing.T) {
	r := &Reconnector{Backoff: BackoffConfig{InitialDelay: 100, MaxDelay: 10000, Multiplier: 2.0, Jitter: false}}
	d1 := r.NextDelay(1)
	d2 := r.NextDelay(2)
	d3 := r.NextDelay(3)
	if !(d1 < d2 && d2 < d3) {
		t.Fatalf("backoff not increasing: %v, %v, %v", d1, d2, d3)
	}
}

func TestReconnectorFailedStreakResetsOnSuccess(t *testing.T) {
	r := &Reconnector{Backoff: BackoffConfig{InitialDelay: 100, MaxDelay: 10000, Multiplier: 2.0, Jitter: false}}
	r.Failed()
	d2 := r.Failed()
	r.Succeeded()
	d1Again := r.Failed()
	if d1Again >= d2 {
		t.Fatalf("Succeeded did not reset streak: got %v after reset, want < %v", d1Again, d2)
	}
}
