// Command fpsbench drives the fpsample variants against synthetic or
// CSV point clouds and reports summary statistics of the resulting
// selection. It replaces the host-language array-interop wrapper the
// core library deliberately omits with an ambient Go tool instead.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
