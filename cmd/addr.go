package cmd

import (
	"fmt"
	"net"
	"os"
)

// serveAddr returns the listen address: an optional positional argument
// to "serve" overrides the configured address.
func serveAddr(configured string) (string, error) {
	if len(os.Args) < 3 {
		return configured, nil
	}

	addr := os.Args[2]
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", fmt.Errorf("invalid address %q: %w", addr, err)
	}
	return addr, nil
}
