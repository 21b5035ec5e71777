package main

import (
	"fmt"

	"github.com/fwojciec/yoola"
)

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	for _, l := range yoola.Languages() {
		fmt.Fprintln(deps.Stdout, l.Name)
	}
	return nil
}
