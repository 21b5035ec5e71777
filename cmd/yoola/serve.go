package main

import (
	"fmt"

	"github.com/fwojciec/yoola"
	yoolahttp "github.com/fwojciec/yoola/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := yoolahttp.NewServer(c.Addr, deps.Router, deps.Logger)
	if err := server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return yoola.Errorf(yoola.EUNAVAILABLE, "cannot listen on %s: %v", c.Addr, err)
	}

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())
	<-deps.Ctx.Done()

	return server.Close()
}
