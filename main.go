// Package main is the entry point for the artifactpath CLI.
package main

import "gooze.dev/pkg/artifactpath/cmd"

func main() {
	cmd.Execute()
}
