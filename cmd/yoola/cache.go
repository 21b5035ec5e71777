package main

import (
	"fmt"

	"github.com/fwojciec/yoola"
)

// Run executes the cache check command.
func (c *CacheCheckCmd) Run(deps *Dependencies) error {
	s, err := deps.Coordinator.CheckCache(deps.Ctx, c.Domain)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}
	if s == nil {
		fmt.Fprintf(deps.Stdout, "No cached summary for %s\n", c.Domain)
		return nil
	}

	fmt.Fprint(deps.Stdout, yoola.FormatSummary(s))
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if err := deps.Coordinator.ClearCache(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Cache cleared")
	return nil
}
