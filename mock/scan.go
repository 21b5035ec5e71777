package mock

import (
	"context"

	"github.com/fwojciec/yoola"
)

var (
	_ yoola.DomainLimiter  = (*DomainLimiter)(nil)
	_ yoola.MessageHandler = (*MessageHandler)(nil)
)

// DomainLimiter is a mock implementation of yoola.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

// MessageHandler is a mock implementation of yoola.MessageHandler.
type MessageHandler struct {
	HandleFn func(ctx context.Context, msg *yoola.Message) *yoola.Response
}

func (h *MessageHandler) Handle(ctx context.Context, msg *yoola.Message) *yoola.Response {
	return h.HandleFn(ctx, msg)
}
