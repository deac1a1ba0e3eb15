// Command choreo builds animation schedules and samples pausable oscillators.
package main

import "github.com/opencode-ai/choreo/internal/cli"

func main() {
	cli.Main()
}
