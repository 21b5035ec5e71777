package main

import (
	"fmt"

	"github.com/fwojciec/yoola"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	result := deps.Coordinator.CheckForTerms(deps.Ctx, page)
	if !result.Found {
		return nil
	}

	if result.OnTermsPage {
		fmt.Fprintf(deps.Stdout, "Terms page detected (%d characters)\n", len(result.Content))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d terms links:\n", len(result.Links))
	for _, l := range result.Links {
		fmt.Fprintf(deps.Stdout, "  %s  %s\n", l.Text, l.URL)
	}
	return nil
}
