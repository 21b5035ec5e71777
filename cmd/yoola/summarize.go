package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/summarize"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	deps.Coordinator.NoCache = c.NoCache
	s, err := deps.Coordinator.SummarizeCurrentPage(deps.Ctx, page, c.Language)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	return afterSummary(deps, s, c.Copy, c.Open, c.Save)
}

// Run executes the link command.
func (c *LinkCmd) Run(deps *Dependencies) error {
	link := yoola.TermsLink{Text: c.Text, URL: c.URL}
	s, err := deps.Coordinator.SummarizeLink(deps.Ctx, link, c.Language, c.Yes)
	if errors.Is(err, summarize.ErrDeclined) {
		fmt.Fprintln(deps.Stdout, "Skipped.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	return afterSummary(deps, s, false, false, false)
}

// afterSummary runs the footer actions requested for s.
func afterSummary(deps *Dependencies, s *yoola.Summary, copyText, open, save bool) error {
	if copyText {
		if err := deps.Clipboard.Copy(yoola.FormatSummary(s)); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, "Copied!")
	}
	if open {
		if err := deps.Opener.Open(s.SourceURL()); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
			return err
		}
	}
	if save {
		path, err := deps.Writer.WriteSummary(deps.Ctx, s)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved summary to %s\n", path)
	}
	return nil
}

// loadPage reads the page from file when given, else fetches url.
func loadPage(deps *Dependencies, url, file string) (*yoola.Page, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, yoola.Errorf(yoola.EINVALID, "cannot read %s: %v", file, err)
		}
		return &yoola.Page{URL: url, HTML: string(data)}, nil
	}
	if url == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "a URL or --file is required")
	}
	return deps.Coordinator.LoadPage(deps.Ctx, url)
}
