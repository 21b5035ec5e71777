package main

import (
	"fmt"

	"github.com/fwojciec/yoola"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	var found int
	err := deps.Scanner.Scan(deps.Ctx, c.URLs, func(r *yoola.ScanResult) {
		switch {
		case r.Skipped:
			fmt.Fprintf(deps.Stdout, "-  %s (already scanned)\n", r.URL)
		case r.Err != nil:
			fmt.Fprintf(deps.Stdout, "?  %s (%s)\n", r.URL, yoola.ErrorMessage(r.Err))
		default:
			if r.Found {
				found++
			}
			indicator := r.Indicator()
			if indicator == "" {
				indicator = " "
			}
			fmt.Fprintf(deps.Stdout, "%s  %s\n", indicator, r.URL)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nTerms found on %d of %d pages\n", found, len(c.URLs))
	return nil
}
