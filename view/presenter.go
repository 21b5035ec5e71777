package view

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/yoola"
)

var _ yoola.Presenter = (*Presenter)(nil)

// Presenter writes rendered views to a terminal as Markdown and reads
// confirmations from input.
type Presenter struct {
	mu       sync.Mutex
	w        io.Writer
	in       *bufio.Reader
	renderer *Renderer
	conv     yoola.Converter
}

// NewPresenter creates a new Presenter writing to w. A nil in declines every
// confirmation.
func NewPresenter(w io.Writer, in io.Reader, conv yoola.Converter) *Presenter {
	p := &Presenter{w: w, renderer: NewRenderer(), conv: conv}
	if in != nil {
		p.in = bufio.NewReader(in)
	}
	return p
}

func (p *Presenter) Loading(msg string) { p.show(p.renderer.Loading(msg)) }

func (p *Presenter) Status(msg string) { p.show(p.renderer.Status(msg)) }

func (p *Presenter) NoTerms() { p.show(p.renderer.NoTerms()) }

func (p *Presenter) Summary(s *yoola.Summary) { p.show(p.renderer.Summary(s)) }

func (p *Presenter) Error(msg string) { p.show(p.renderer.Error(msg)) }

// Confirm shows the confirmation view and reads a y/N answer.
func (p *Presenter) Confirm(ctx context.Context, url, domain string) (bool, error) {
	p.show(p.renderer.Confirm(url, domain))
	if p.in == nil {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "Summarize anyway? [y/N] ")
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *Presenter) show(html string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		fmt.Fprintf(p.w, "%s\n\n", yoola.ErrorMessage(err))
		return
	}
	md, err := p.conv.Convert(html)
	if err != nil {
		fmt.Fprintf(p.w, "%s\n\n", html)
		return
	}
	fmt.Fprintf(p.w, "%s\n\n", md)
}
