package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	lbt "github.com/cpmech/lbt/cmd/lbt"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(lbt.ExitMalformed)
		}
	}()
	os.Exit(lbt.Main(os.Args[1:], os.Stdout))
}
