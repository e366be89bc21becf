// Package cmd implements the CLI application to run account simulations.
package cmd

import "github.com/google/subcommands"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "simulation")
	c.Register(&settleCmd{}, "simulation")

	c.Register(&topicCmd{}, "documentation")
}
