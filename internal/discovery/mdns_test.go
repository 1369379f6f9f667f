package discovery

import (
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantIP   string
		wantPort int
	}{
		{
			name: "termfolio server with IPv4",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "alex-laptop"},
				HostName:      "alex-laptop.local.",
				Port:          8080,
				AddrIPv4:      []net.IP{net.ParseIP("192.168.4.16")},
				Text:          []string{"app=termfolio", "path=/", "version=v0.3.0"},
			},
			wantIP:   "192.168.4.16",
			wantPort: 8080,
		},
		{
			name: "no port specified (should default to 80)",
			entry: &zeroconf.ServiceEntry{
				ServiceRecord: zeroconf.ServiceRecord{Instance: "lab"},
				HostName:      "lab.local",
				AddrIPv4:      []net.IP{net.ParseIP("172.16.0.1")},
				Text:          []string{"app=termfolio"},
			},
			wantIP:   "172.16.0.1",
			wantPort: 80,
		},
		{
			name: "other _http._tcp service",
			entry: &zeroconf.ServiceEntry{
				HostName: "printer.local",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
				Text:     []string{"path=/", "app=cups"},
			},
			wantNil: true,
		},
		{
			name: "no TXT records",
			entry: &zeroconf.ServiceEntry{
				HostName: "nas.local",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.2")},
			},
			wantNil: true,
		},
		{
			name: "no IP address",
			entry: &zeroconf.ServiceEntry{
				HostName: "ghost.local",
				Port:     8080,
				Text:     []string{"app=termfolio"},
			},
			wantNil: true,
		},
		{
			name: "IPv6 only",
			entry: &zeroconf.ServiceEntry{
				HostName: "v6.local",
				Port:     8080,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
				Text:     []string{"app=termfolio"},
			},
			wantIP:   "fe80::1",
			wantPort: 8080,
		},
		{
			name: "both IPv4 and IPv6 (should prefer IPv4)",
			entry: &zeroconf.ServiceEntry{
				HostName: "dual.local",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::2")},
				Text:     []string{"app=termfolio"},
			},
			wantIP:   "192.168.1.50",
			wantPort: 8080,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := scanner.parseServiceEntry(tt.entry)

			if tt.wantNil {
				if inst != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", inst)
				}
				return
			}
			if inst == nil {
				t.Fatal("parseServiceEntry() = nil, want instance")
			}
			if inst.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", inst.IP, tt.wantIP)
			}
			if inst.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", inst.Port, tt.wantPort)
			}
			if inst.Hostname != tt.entry.HostName || inst.Name != tt.entry.Instance {
				t.Errorf("Hostname/Name = %q/%q", inst.Hostname, inst.Name)
			}
			if time.Since(inst.DiscoveredAt) > time.Second {
				t.Errorf("DiscoveredAt is not recent: %v", inst.DiscoveredAt)
			}
		})
	}
}

func TestParseTXT(t *testing.T) {
	got := parseTXT([]string{"app=termfolio", "path=/", "flag", "motd=a=b"})
	want := map[string]string{"app": "termfolio", "path": "/", "flag": "", "motd": "a=b"}
	if len(got) != len(want) {
		t.Fatalf("parseTXT() has %d entries, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("parseTXT()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestInstanceURL(t *testing.T) {
	tests := []struct {
		name string
		inst Instance
		want string
	}{
		{"plain", Instance{IP: "192.168.1.5", Port: 8080}, "http://192.168.1.5:8080/"},
		{"tls", Instance{IP: "10.0.0.2", Port: 8443, Metadata: map[string]string{"tls": "1"}}, "https://10.0.0.2:8443/"},
		{"ipv6", Instance{IP: "fe80::1", Port: 80}, "http://[fe80::1]:80/"},
		{"custom path", Instance{IP: "10.0.0.3", Port: 80, Metadata: map[string]string{"path": "/term"}}, "http://10.0.0.3:80/term"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.inst.URL(); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}
