package main

import (
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCmd(a).Execute(); err != nil {
		a.printErrors(err)
		os.Exit(1)
	}
}
