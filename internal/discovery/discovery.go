// Package discovery advertises and resolves the console service over
// local-network Bonjour/DNS-SD, per spec.md §6.
package discovery

import (
	"context"
	"fmt"

	"github.com/grandcat/zeroconf"
)

// ServiceType is the service type literal services advertise under.
const ServiceType = "_apparata-approach-v0001._tcp"

// Domain is the Bonjour domain the protocol operates in.
const Domain = "local."

// Advertiser publishes a service instance on the local network.
type Advertiser interface {
	Shutdown()
}

// Advertise registers instanceName under ServiceType/Domain on port,
// returning an Advertiser whose Shutdown withdraws the registration.
func Advertise(instanceName string, port int) (Advertiser, error) {
	server, err := zeroconf.Register(instanceName, ServiceType, Domain, port, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("discovery: advertise %q: %w", instanceName, err)
	}
	return server, nil
}

// Resolved is one discovered service instance's network address.
type Resolved struct {
	InstanceName string
	Host         string
	Port         int
}

// Resolve browses for instanceName under ServiceType/Domain until ctx is
// done or it is found, whichever comes first.
func Resolve(ctx context.Context, instanceName string) (Resolved, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return Resolved{}, fmt.Errorf("discovery: new resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan Resolved, 1)
	go func() {
		for entry := range entries {
			if entry.Instance != instanceName {
				continue
			}
			host := entry.HostName
			if len(entry.AddrIPv4) > 0 {
				host = entry.AddrIPv4[0].String()
			}
			select {
			case found <- Resolved{InstanceName: entry.Instance, Host: host, Port: entry.Port}:
			default:
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, Domain, entries); err != nil {
		return Resolved{}, fmt.Errorf("discovery: browse: %w", err)
	}

	select {
	case r := <-found:
		return r, nil
	case <-ctx.Done():
		return Resolved{}, fmt.Errorf("discovery: resolve %q: %w", instanceName, ctx.Err())
	}
}
