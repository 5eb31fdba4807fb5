// Package main is the entry point for the forum API.
// It runs the command tree; without arguments it starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"forumapi/src/app/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}
