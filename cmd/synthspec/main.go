// Command synthspec is the spectroscopy engine CLI.
package main

import "github.com/synthspec/synthspec/internal/interfaces/cli"

func main() {
	cli.Execute()
}
