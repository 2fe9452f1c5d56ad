//go:build unix

package main

import (
	"os"
	"path/filepath"

	"github.com/hnrobert/bsdid/internal/idcmd"
	"github.com/hnrobert/bsdid/internal/identity"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	if len(argv) == 0 {
		argv = []string{"id"}
	}
	program := "id"
	if argv[0] != "" {
		program = filepath.Base(argv[0])
	}
	return idcmd.Run(argv[1:], idcmd.Config{
		Program: program,
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Source:  identity.NewSystem(),
	})
}
