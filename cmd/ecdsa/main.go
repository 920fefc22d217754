package main

import (
	"os"

	"github.com/smallyu/go-ecdsa/cmd/ecdsa/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
