package discovery

import (
	"fmt"
	"net"
	"time"
)

// Instance is a termfolio server found on the local network.
type Instance struct {
	// Name is the mDNS instance name (e.g., "alex-laptop")
	Name string

	// Hostname is the mDNS hostname (e.g., "alex-laptop.local.")
	Hostname string

	// IP is the address to connect to, IPv4 when available
	IP string

	// Port is the HTTP port the server listens on
	Port int

	// Metadata holds the TXT record fields ("app", "path", "version", "tls")
	Metadata map[string]string

	// DiscoveredAt is when the instance answered
	DiscoveredAt time.Time
}

// String returns a human-readable summary.
func (i *Instance) String() string {
	return fmt.Sprintf("%s (%s) at %s", i.Name, i.Hostname, i.URL())
}

// URL returns the address of the browser terminal.
func (i *Instance) URL() string {
	scheme := "http"
	if i.GetMetadata(TXTKeyTLS) == "1" {
		scheme = "https"
	}
	host := i.IP
	if ip := net.ParseIP(i.IP); ip != nil && ip.To4() == nil {
		host = "[" + i.IP + "]"
	}
	path := i.GetMetadata(TXTKeyPath)
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("%s://%s:%d%s", scheme, host, i.Port, path)
}

// Version returns the advertised server version, if any.
func (i *Instance) Version() string {
	return i.GetMetadata(TXTKeyVersion)
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found.
func (i *Instance) GetMetadata(key string) string {
	if i.Metadata == nil {
		return ""
	}
	return i.Metadata[key]
}
