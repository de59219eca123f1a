// Package main is the entry point for the chatctl CLI.
package main

import (
	"fmt"
	"os"

	"realestate_chatbot/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
