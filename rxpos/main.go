package main

import (
	"os"

	"github.com/rxledger/pharmacy/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
