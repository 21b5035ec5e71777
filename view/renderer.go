// Package view renders the states of a summarization request as HTML
// fragments and presents them to a terminal.
package view

import (
	"bytes"
	"html/template"
	"net/url"
	"time"

	"github.com/fwojciec/yoola"
)

// Texts shown for fixed states.
const (
	TextNoTerms = "No terms of service found on this page."
	TextConfirm = "This link doesn't appear to be a terms of service page. Do you still want to summarize it?"
	TextError   = "Sorry, we couldn't generate a summary."
)

// DateLayout formats the summary creation date.
const DateLayout = "January 2, 2006"

var templates = template.Must(template.New("view").Funcs(template.FuncMap{
	"host": hostOf,
	"date": formatDate,
}).Parse(`
{{define "loading"}}<div class="yoola-overlay yoola-loading"><p>{{.}}</p></div>{{end}}

{{define "status"}}<div class="yoola-overlay yoola-status"><p><em>{{.}}</em></p></div>{{end}}

{{define "noTerms"}}<div class="yoola-overlay yoola-no-terms"><p>` + TextNoTerms + `</p></div>{{end}}

{{define "error"}}<div class="yoola-overlay yoola-error"><h2>Terms Summary</h2><p>` + TextError + ` {{.}}</p></div>{{end}}

{{define "confirm"}}<div class="yoola-overlay yoola-confirm">
<h2>Summarize this page?</h2>
<p>` + TextConfirm + `</p>
<p><a href="{{.URL}}">{{if .Domain}}{{.Domain}}{{else}}{{.URL}}{{end}}</a></p>
</div>{{end}}

{{define "summary"}}<div class="yoola-overlay yoola-summary">
<h2>Terms Summary</h2>
<p><strong>{{.Badge}}</strong></p>
{{- with host .SourceURL}}<p>Source: {{.}}</p>{{end}}
{{- with date .CreatedAt}}<p>Generated: {{.}}</p>{{end}}
{{- if .KeyPoints}}
<h3>Key Points</h3>
<ul>{{range .KeyPoints}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- if .DataCollection}}
<h3>Data Collection</h3>
<p>{{.DataCollection}}</p>
{{- end}}
{{- if .UserRights}}
<h3>Your Rights</h3>
<p>{{.UserRights}}</p>
{{- end}}
{{- if .Alerts}}
<h3>Important Alerts</h3>
<ul>{{range .Alerts}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
<footer>{{with .SourceURL}}<a href="{{.}}">View Original</a> | {{end}}<a href="#copy">Copy</a></footer>
</div>{{end}}
`))

// Renderer renders request states to HTML markup.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Loading(msg string) (string, error) { return render("loading", msg) }

func (r *Renderer) Status(msg string) (string, error) { return render("status", msg) }

func (r *Renderer) NoTerms() (string, error) { return render("noTerms", nil) }

func (r *Renderer) Error(msg string) (string, error) { return render("error", msg) }

// Confirm renders the question shown before summarizing a link that does
// not look like terms.
func (r *Renderer) Confirm(url, domain string) (string, error) {
	return render("confirm", struct{ URL, Domain string }{url, domain})
}

// Summary renders the full summary card.
func (r *Renderer) Summary(s *yoola.Summary) (string, error) {
	if s == nil {
		return "", yoola.Errorf(yoola.EINVALID, "summary required")
	}
	return render("summary", s)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", yoola.Errorf(yoola.EINTERNAL, "rendering %s view: %v", name, err)
	}
	return buf.String(), nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
