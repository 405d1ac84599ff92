package wire

import (
	"net"
	"testing"

	"github.com/rs/zerolog"
)

func newTestPair(t *testing.T) (*Conn, *Conn) {
	t.Helper()
	svcNC, cliNC := net.Pipe()
	svc := NewConn(svcNC, RoleService, zerolog.Nop())
	cli := NewConn(cliNC, RoleClient, zerolog.Nop())
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
			t.Fatalf("handshake failed: %v", err)
		}
	}
	return svc, cli
}

func TestConnSendRecvRoundTrip(t *testing.T) {
	svc, cli := newTestPair(t)
	defer svc.Cancel()
	defer cli.Cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		meta, payload, err := svc.Recv()
		if err != nil {
			t.Errorf("svc.Recv: %v", err)
			return
		}
		if string(meta) != "meta" || string(payload) != "payload" {
			t.Errorf("got meta=%q payload=%q", meta, payload)
		}
	}()

	if err := cli.Send([]byte("meta"), []byte("payload")); err != nil {
		t.Fatalf("cli.Send: %v", err)
	}
	<-done
}

func TestConnStateMachine(t *testing.T) {
	svcNC, _ := net.Pipe()
	c := NewConn(svcNC, RoleService, zerolog.Nop())
	if c.State() != StateSetup {
		t.Fatalf("initial state = %s, want setup", c.State())
	}
	if err := c.Send(nil, nil); err != ErrNoConnection {
		t.Fatalf("Send before established: err = %v, want ErrNoConnection", err)
	}
	if err := c.Prepare(); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateReady {
		t.Fatalf("state after Prepare = %s, want ready", c.State())
	}
	c.Wait()
	if c.State() != StateWaiting {
		t.Fatalf("state after Wait = %s, want waiting", c.State())
	}
	c.Resume()
	if c.State() != StateReady {
		t.Fatalf("state after Resume = %s, want ready", c.State())
	}
	if err := c.Cancel(); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateCancelled {
		t.Fatalf("state after Cancel = %s, want cancelled", c.State())
	}
}

func TestConnHandshakeMismatchTearsDown(t *testing.T) {
	svcNC, cliNC := net.Pipe()
	svc := NewConn(svcNC, RoleService, zerolog.Nop())
	_ = NewConn(cliNC, RoleClient, zerolog.Nop())
	if err := svc.Prepare(); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, len(ServiceHandshake))
		cliNC.Read(buf)
		cliNC.Write([]byte("NOTAVALIDCLIEN")) // wrong, but right length
	}()

	err := svc.Handshake()
	<-done
	if err == nil {
		t.Fatal("expected handshake error")
	}
	if svc.State() != StateCancelled {
		t.Fatalf("state = %s, want cancelled", svc.State())
	}
}
