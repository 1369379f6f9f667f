package discovery

import (
	"context"
	"fmt"
	"net"
	"os"
	"sort"
	"sync"

	"github.com/alexchen/termfolio/internal/logging"
	"github.com/alexchen/termfolio/internal/version"
	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"
)

type advertisement interface {
	Shutdown()
}

// register is replaced in tests.
var register = func(instance, service, domain string, port int, text []string, ifaces []net.Interface) (advertisement, error) {
	server, err := zeroconf.Register(instance, service, domain, port, text, ifaces)
	if err != nil {
		return nil, err
	}
	return server, nil
}

// Advertise announces a termfolio server on the local network until ctx is
// cancelled or the returned shutdown func is called. An empty name falls
// back to the hostname. Extra TXT fields are added to app, path and
// version; they cannot override those three.
func Advertise(ctx context.Context, name string, port int, txt map[string]string) (func(), error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}
	if name == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = AppName
		}
		name = host
	}

	records := TXTRecords(txt)
	server, err := register(name, ServiceType, ServiceDomain, port, records, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising over mDNS",
		zap.String("instance", name),
		zap.String("service", ServiceType),
		zap.Int("port", port),
		zap.Strings("txt", records),
	)

	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			server.Shutdown()
			logging.Debug("mDNS advertisement stopped", zap.String("instance", name))
		})
	}
	go func() {
		<-ctx.Done()
		shutdown()
	}()
	return shutdown, nil
}

// TXTRecords builds the TXT record list for an advertisement, sorted by key.
func TXTRecords(extra map[string]string) []string {
	fields := map[string]string{}
	for k, v := range extra {
		fields[k] = v
	}
	fields[TXTKeyApp] = AppName
	fields[TXTKeyPath] = "/"
	fields[TXTKeyVersion] = version.Version

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	records := make([]string, 0, len(keys))
	for _, k := range keys {
		records = append(records, k+"="+fields[k])
	}
	return records
}
