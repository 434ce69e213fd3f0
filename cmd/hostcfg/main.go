// hostcfg serves an HTTP API for managing each user's named host configurations.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(serve).Execute(); err != nil {
		os.Exit(1)
	}
}
