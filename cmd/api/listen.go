package main

import (
	"fmt"
	"net"
)

// fallbackPorts are tried in order when no address is configured.
var fallbackPorts = []int{3000, 3001, 8080, 8081, 5000, 5001, 4000, 4001}

// listen binds addr, or the first free fallback port, or an OS-assigned
// port when all of them are taken.
func listen(addr string) (net.Listener, error) {
	if addr != "" {
		return net.Listen("tcp", addr)
	}
	for _, p := range fallbackPorts {
		if ln, err := net.Listen("tcp", fmt.Sprintf(":%d", p)); err == nil {
			return ln, nil
		}
	}
	return net.Listen("tcp", ":0")
}
