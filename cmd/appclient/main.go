// Command appclient is the interactive terminal client: it discovers a
// named service, performs the handshake, reads typed command lines, and
// executes them.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/apparata/appconsole/internal/discovery"
	"github.com/apparata/appconsole/internal/logging"
	"github.com/apparata/appconsole/internal/parser"
	"github.com/apparata/appconsole/internal/session"
	"github.com/apparata/appconsole/internal/wire"
)

// resolveTimeout bounds a single discovery attempt so a service that
// never appears doesn't stall reconnect instead of backing off.
const resolveTimeout = 10 * time.Second

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "appclient [-v|--verbose] <instanceName>",
		Short: "Connect to an appservice instance and run commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "appclient: %v\n", err)
		os.Exit(1)
	}
}

type consoleSink struct {
	log zerolog.Logger
}

func (s consoleSink) ConsoleOutput(text string) { fmt.Println(text) }
func (s consoleSink) Screenshot(data []byte)    { fmt.Printf("[screenshot: %d bytes]\n", len(data)) }
func (s consoleSink) File(msg session.FileMessage) {
	fmt.Printf("[file: %s, %d bytes]\n", msg.Filename, len(msg.Filedata))
}

func run(instanceName string) error {
	profile := logging.ProfileRuntime
	if verbose {
		profile = logging.ProfileTest
	}
	log := logging.Configure(profile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("appclient: shutting down")
		cancel()
	}()

	reconnector := session.NewReconnector()
	for {
		err := connectAndServe(ctx, instanceName, reconnector, log)
		if err != nil {
			log.Warn().Err(err).Msg("appclient: session ended, reconnecting")
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnector.Failed()):
		}
	}
}

func connectAndServe(ctx context.Context, instanceName string, reconnector *session.Reconnector, log zerolog.Logger) error {
	resolveCtx, cancelResolve := context.WithTimeout(ctx, resolveTimeout)
	resolved, err := discovery.Resolve(resolveCtx, instanceName)
	cancelResolve()
	if err != nil {
		return fmt.Errorf("resolve %s: %w", instanceName, err)
	}
	addr := net.JoinHostPort(resolved.Host, fmt.Sprintf("%d", resolved.Port))

	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	conn := wire.NewConn(nc, wire.RoleClient, log)
	if err := conn.Prepare(); err != nil {
		return err
	}
	if err := conn.Handshake(); err != nil {
		return err
	}
	defer conn.Cancel()

	cliSession := session.NewClientSession(conn, consoleSink{log: log}, log)
	if err := cliSession.Connect(); err != nil {
		return fmt.Errorf("session connect: %w", err)
	}
	reconnector.Succeeded()

	isTerminal := term.IsTerminal(int(os.Stdin.Fd()))
	reader := bufio.NewReader(os.Stdin)
	for {
		if isTerminal {
			fmt.Print("> ")
		}
		line, err := session.ReadLine(reader)
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}
		if line == "" {
			continue
		}

		inv, err := parser.Evaluate(line, cliSession.Catalog.Commands)
		if err != nil {
			if ue, ok := err.(*parser.UsageRequestedError); ok {
				fmt.Println(parser.FormatUsage(ue))
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		if err := cliSession.ExecuteCommand(inv); err != nil {
			return fmt.Errorf("executing command: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}
