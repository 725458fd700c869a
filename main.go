// Package main is the entry point for the tunestat CLI application.
// It runs analytical SQL reports against a file-backed music-store database.
package main

import (
	"tunestat/cli/cmd"
)

func main() {
	cmd.Execute()
}
