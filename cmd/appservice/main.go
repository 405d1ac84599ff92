// Command appservice hosts the in-app command runtime: it advertises
// itself on the local network, accepts client connections, and serves
// the demo command catalog.
package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/apparata/appconsole/internal/adminhttp"
	"github.com/apparata/appconsole/internal/catalog"
	"github.com/apparata/appconsole/internal/democatalog"
	"github.com/apparata/appconsole/internal/discovery"
	"github.com/apparata/appconsole/internal/handler"
	"github.com/apparata/appconsole/internal/logging"
	"github.com/apparata/appconsole/internal/session"
	"github.com/apparata/appconsole/internal/wire"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:   "appservice [-v|--verbose] <instanceName>",
		Short: "Host the console's in-app command runtime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "appservice: %v\n", err)
		os.Exit(1)
	}
}

func run(instanceName string) error {
	profile := logging.ProfileRuntime
	if verbose {
		profile = logging.ProfileTest
	}
	log := logging.Configure(profile)

	addr := ":9000"
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer listener.Close()

	_, portStr, err := net.SplitHostPort(listener.Addr().String())
	if err != nil {
		return err
	}
	var port int
	fmt.Sscanf(portStr, "%d", &port)

	advertiser, err := discovery.Advertise(instanceName, port)
	if err != nil {
		log.Warn().Err(err).Msg("appservice: discovery advertise failed, continuing without it")
	} else {
		defer advertiser.Shutdown()
	}

	cat := democatalog.Build()
	registry := handler.NewRegistry()
	registry.Register([]string{"stuff", "echo"}, handler.Echo)
	registry.Register([]string{"stuff", "sleep"}, handler.Sleep)

	table := session.NewTable()

	admin := adminhttp.NewServer(instanceName, ":9001", nil, table, func() catalog.Catalog { return cat }, log)
	go func() {
		if err := admin.Run(); err != nil {
			log.Error().Err(err).Msg("appservice: admin server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	connCh := make(chan net.Conn)
	go func() {
		for {
			nc, err := listener.Accept()
			if err != nil {
				return
			}
			connCh <- nc
		}
	}()

	log.Info().Str("instance", instanceName).Str("addr", addr).Msg("appservice: listening")

	for {
		select {
		case <-sigCh:
			log.Info().Msg("appservice: shutting down")
			return nil
		case nc := <-connCh:
			go serveConn(nc, table, cat, instanceName, registry, log)
		}
	}
}

func serveConn(nc net.Conn, table *session.Table, cat catalog.Catalog, instanceName string, registry *handler.Registry, log zerolog.Logger) {
	conn := wire.NewConn(nc, wire.RoleService, log)
	if err := conn.Prepare(); err != nil {
		log.Error().Err(err).Msg("appservice: prepare failed")
		return
	}
	if err := conn.Handshake(); err != nil {
		log.Error().Err(err).Msg("appservice: handshake failed")
		return
	}
	id := table.Add(conn)
	defer table.Forget(id)

	info := session.GeneralInfo{InstanceName: instanceName, Platform: "go", Version: "1"}
	svcSession := session.NewServiceSession(conn, cat, info, registry, log)
	if err := svcSession.Run(); err != nil {
		log.Debug().Err(err).Msg("appservice: session ended")
	}
}
