package main

import (
	"os"

	"github.com/JaimeStill/discvault/cmd/discvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
