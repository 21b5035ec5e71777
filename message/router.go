// Package message dispatches action messages to the application.
package message

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/summarize"
	"github.com/fwojciec/yoola/view"
)

var _ yoola.MessageHandler = (*Router)(nil)

// Router answers Messages by action name. Every failure is reported in
// Response.Error.
type Router struct {
	Coordinator *summarize.Coordinator
	Settings    yoola.SettingsService
	Renderer    *view.Renderer
	Logger      *slog.Logger

	// OnSettingsChanged, if set, is called after settings are saved or reset.
	OnSettingsChanged func(s *yoola.Settings)
}

// NewRouter creates a new Router.
func NewRouter(c *summarize.Coordinator, settings yoola.SettingsService, logger *slog.Logger) *Router {
	return &Router{
		Coordinator: c,
		Settings:    settings,
		Renderer:    view.NewRenderer(),
		Logger:      logger,
	}
}

// Handle dispatches msg.
func (r *Router) Handle(ctx context.Context, msg *yoola.Message) (resp *yoola.Response) {
	defer func() {
		if p := recover(); p != nil {
			r.logger().ErrorContext(ctx, "message handler panic", "panic", fmt.Sprint(p))
			resp = &yoola.Response{Error: yoola.ErrorMessage(fmt.Errorf("panic: %v", p))}
		}
	}()

	if msg == nil {
		return r.fail(ctx, "", yoola.Errorf(yoola.EINVALID, "message required"))
	}

	resp, err := r.dispatch(ctx, msg)
	if err != nil {
		return r.fail(ctx, msg.Action, err)
	}
	return resp
}

func (r *Router) dispatch(ctx context.Context, msg *yoola.Message) (*yoola.Response, error) {
	switch msg.Action {
	case yoola.ActionPing:
		return &yoola.Response{Success: true}, nil

	case yoola.ActionSummarizeCurrentPage:
		page, err := r.page(ctx, msg)
		if err != nil {
			return nil, err
		}
		s, err := r.Coordinator.SummarizeCurrentPage(ctx, page, msg.Language)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, Summary: s}, nil

	case yoola.ActionSummarizeTermsLink:
		if msg.URL == "" {
			return nil, yoola.Errorf(yoola.EINVALID, "url required")
		}
		link := yoola.TermsLink{Text: msg.Text, URL: msg.URL}
		s, err := r.Coordinator.SummarizeLink(ctx, link, msg.Language, msg.Confirmed)
		if errors.Is(err, summarize.ErrDeclined) {
			domain, _ := yoola.Hostname(msg.URL)
			html, err := r.Renderer.Confirm(msg.URL, domain)
			if err != nil {
				return nil, err
			}
			return &yoola.Response{Confirm: true, HTML: html}, nil
		} else if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, Summary: s}, nil

	case yoola.ActionGetSummaryInLanguage:
		s, err := r.Coordinator.SummaryInLanguage(ctx, msg.Content, msg.Domain, msg.URL, msg.Language)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, Summary: s}, nil

	case yoola.ActionGetAvailableLanguages:
		return &yoola.Response{Success: true, Languages: yoola.Languages()}, nil

	case yoola.ActionCheckForTerms:
		page, err := r.page(ctx, msg)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, Terms: r.Coordinator.CheckForTerms(ctx, page)}, nil

	case yoola.ActionShowSummary:
		html, err := r.Renderer.Summary(msg.Summary)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, HTML: html}, nil

	case yoola.ActionShowError:
		html, err := r.Renderer.Error(msg.Error)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, HTML: html}, nil

	case yoola.ActionConfirmSummarize:
		html, err := r.Renderer.Confirm(msg.URL, msg.Domain)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, Confirm: true, HTML: html}, nil

	case yoola.ActionGetSettings:
		settings, err := r.Settings.FindSettings(ctx)
		if err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true, Settings: settings}, nil

	case yoola.ActionSaveSettings:
		if msg.Settings == nil {
			return nil, yoola.Errorf(yoola.EINVALID, "settings required")
		}
		settings, err := r.Settings.UpdateSettings(ctx, *msg.Settings)
		if err != nil {
			return nil, err
		}
		r.settingsChanged(settings)
		return &yoola.Response{Success: true, Settings: settings}, nil

	case yoola.ActionResetSettings:
		settings, err := r.Settings.ResetSettings(ctx)
		if err != nil {
			return nil, err
		}
		r.settingsChanged(settings)
		return &yoola.Response{Success: true, Settings: settings}, nil

	case yoola.ActionCheckCache:
		domain := msg.Domain
		if domain == "" {
			var err error
			if domain, err = yoola.Hostname(msg.URL); err != nil {
				return nil, err
			}
		}
		s, err := r.Coordinator.CheckCache(ctx, domain)
		if err != nil {
			return nil, err
		}
		cached := s != nil
		return &yoola.Response{Success: true, Cached: &cached, Data: s}, nil

	case yoola.ActionClearCache:
		if err := r.Coordinator.ClearCache(ctx); err != nil {
			return nil, err
		}
		return &yoola.Response{Success: true}, nil

	default:
		return nil, yoola.Errorf(yoola.EINVALID, "Unknown action: %s", msg.Action)
	}
}

// page returns the inline document of msg, or loads msg.URL.
func (r *Router) page(ctx context.Context, msg *yoola.Message) (*yoola.Page, error) {
	if msg.HTML != "" {
		return &yoola.Page{URL: msg.URL, HTML: msg.HTML}, nil
	}
	if msg.URL == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "url or html required")
	}
	return r.Coordinator.LoadPage(ctx, msg.URL)
}

func (r *Router) settingsChanged(s *yoola.Settings) {
	if r.OnSettingsChanged != nil {
		r.OnSettingsChanged(s)
	}
}

func (r *Router) fail(ctx context.Context, action string, err error) *yoola.Response {
	r.logger().WarnContext(ctx, "message failed", "action", action, "err", err)
	return &yoola.Response{Error: yoola.ErrorMessage(err)}
}

func (r *Router) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
