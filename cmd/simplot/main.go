// Command simplot plots every column of a simulation output table against
// time and shows the figure.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
