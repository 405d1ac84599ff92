package wire

import (
	"io"
	"strings"
	"testing"
)

type pipe struct {
	r io.Reader
	w io.Writer
}

func (p pipe) Read(b []byte) (int, error)  { return p.r.Read(b) }
func (p pipe) Write(b []byte) (int, error) { return p.w.Write(b) }

func TestHandshakeSuccess(t *testing.T) {
	svcR, cliW := io.Pipe()
	cliR, svcW := io.Pipe()
	svc := pipe{r: svcR, w: svcW}
	cli := pipe{r: cliR, w: cliW}

	errs := make(chan error, 2)
	go func() { errs <- serviceHandshake(svc) }()
	go func() { errs <- clientHandshake(cli) }()

	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("handshake leg failed: %v", err)
		}
	}
}

func TestClientHandshakeRejectsWrongServiceString(t *testing.T) {
	r := strings.NewReader("WRONGSTRINGXXXX")
	err := clientHandshake(pipe{r: r, w: io.Discard})
	if err == nil {
		t.Fatal("expected handshake failure")
	}
}

func TestServiceHandshakeRejectsWrongClientString(t *testing.T) {
	r := strings.NewReader("WRONGCLIENTSTR")
	err := serviceHandshake(pipe{r: r, w: io.Discard})
	if err == nil {
		t.Fatal("expected handshake failure")
	}
}
