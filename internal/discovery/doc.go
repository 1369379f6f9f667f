// Package discovery announces and finds termfolio servers on the local
// network over multicast DNS.
//
// A server started with `termfolio serve --advertise` registers an
// "_http._tcp" service whose TXT record carries app=termfolio, the page
// path and the server version. `termfolio scan` browses the same service
// type and keeps only entries with app=termfolio, so printers and NAS
// boxes advertising plain HTTP are ignored.
//
// # Usage Example
//
//	shutdown, err := discovery.Advertise(ctx, "alex-laptop", 8080, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shutdown()
//
//	instances, err := discovery.ScanForInstances(ctx, 3*time.Second)
//	for _, inst := range instances {
//	    fmt.Println(inst.Name, inst.URL())
//	}
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Scanner and server must be on the same local network segment
// - Firewall must allow mDNS (UDP port 5353)
package discovery
