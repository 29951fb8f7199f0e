package cmd

import (
	"fmt"
	"runtime"
)

// Version is the application version, set at build time via
// -ldflags "-X github.com/agrimitra/agrimitra/cmd.Version=v1.2.3".
var Version = "dev"

// runVersion prints version information.
func runVersion() {
	fmt.Printf("agrimitra %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
