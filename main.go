// main package for gooze command-line tool
// Package main is the entry point for the Gooze CLI.
package main

import "gooze.dev/pkg/gooze/cmd"

func main() {
	cmd.Execute()
}
