// Package main provides the entry point for the rlexport CLI.
// The binary retrieves reinforcement-learning experience records from a
// remote export endpoint and writes them to a JSON file or stdout for
// offline training pipelines.
//
// Usage:
//
//	rlexport --session-id <uuid> [--output experiences.json]
//	rlexport --base-url http://localhost:8080/v1 --session-id <uuid> --limit 500 --offset 1000
//	rlexport version
//
// Exit codes:
//
//	0  export succeeded
//	1  transport failure, undecodable response, or invalid arguments
package main

import (
	"errors"
	"fmt"
	"os"

	"rlexport/internal/client/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		// Fetch and decode failures were already reported on stderr with
		// their own prefixes; everything else gets a generic line here.
		if !errors.Is(err, commands.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
