package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/yoola"
	"github.com/fwojciec/yoola/sqlite"
	"github.com/fwojciec/yoola/summarize"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	DB          *sqlite.DB
	Settings    yoola.SettingsService
	Coordinator *summarize.Coordinator
	Scanner     *summarize.Scanner
	Router      yoola.MessageHandler
	Clipboard   yoola.Clipboard
	Opener      yoola.URLOpener
	Writer      yoola.SummaryWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB           string `name:"db" env:"YOOLA_DB" help:"Database path (default ~/.yoola/yoola.db)"`
	APIMethod    string `name:"api-method" enum:"get,post" default:"get" help:"Summary API method (get, post)"`
	Browser      bool   `help:"Load pages with a headless browser"`
	Extractor    string `enum:"goquery,readability,trafilatura" default:"goquery" help:"Content extractor (goquery, readability, trafilatura)"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key, used when aiProvider is gemini"`
	GeminiModel  string `name:"gemini-model" default:"gemini-2.5-flash" help:"Gemini model"`
	Verbose      bool   `short:"v" help:"Log to stderr"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize the terms on a page"`
	Link      LinkCmd      `cmd:"" help:"Follow a terms link and summarize it"`
	Detect    DetectCmd    `cmd:"" help:"Check a page for terms of service"`
	Scan      ScanCmd      `cmd:"" help:"Check many pages for terms"`
	Languages LanguagesCmd `cmd:"" help:"List summary languages"`
	Settings  SettingsCmd  `cmd:"" help:"Show or change settings"`
	Cache     CacheCmd     `cmd:"" help:"Inspect or clear the summary cache"`
	Serve     ServeCmd     `cmd:"" help:"Serve the message API over HTTP"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL      string `arg:"" optional:"" help:"Page URL"`
	File     string `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
	Language string `short:"l" help:"Summary language (default from settings)"`
	Copy     bool   `short:"c" help:"Copy the summary to the clipboard"`
	Open     bool   `short:"o" help:"Open the original page in the browser"`
	Save     bool   `short:"s" help:"Save the summary as Markdown"`
	Out      string `default:"." help:"Directory for saved summaries"`
	NoCache  bool   `name:"no-cache" help:"Skip the local summary cache"`
}

// LinkCmd is the "link" subcommand.
type LinkCmd struct {
	URL      string `arg:"" help:"Link URL"`
	Text     string `short:"t" help:"Link text"`
	Language string `short:"l" help:"Summary language (default from settings)"`
	Yes      bool   `short:"y" help:"Summarize without asking for confirmation"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	URL  string `arg:"" optional:"" help:"Page URL"`
	File string `short:"f" type:"existingfile" help:"Read HTML from a file instead of fetching"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per site (0 disables limiting)"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct{}

// SettingsCmd groups the settings subcommands.
type SettingsCmd struct {
	Show   SettingsShowCmd   `cmd:"" default:"1" help:"Show settings"`
	Set    SettingsSetCmd    `cmd:"" help:"Change one setting"`
	Reset  SettingsResetCmd  `cmd:"" help:"Restore default settings"`
	Export SettingsExportCmd `cmd:"" help:"Write settings as YAML"`
	Import SettingsImportCmd `cmd:"" help:"Read settings from YAML"`
}

// SettingsShowCmd is the "settings show" subcommand.
type SettingsShowCmd struct{}

// SettingsSetCmd is the "settings set" subcommand.
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name, e.g. apiBaseUrl"`
	Value string `arg:"" help:"New value"`
}

// SettingsResetCmd is the "settings reset" subcommand.
type SettingsResetCmd struct{}

// SettingsExportCmd is the "settings export" subcommand.
type SettingsExportCmd struct {
	File string `arg:"" optional:"" help:"Output file (default stdout)"`
}

// SettingsImportCmd is the "settings import" subcommand.
type SettingsImportCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file"`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Check CacheCheckCmd `cmd:"" help:"Show the cached summary for a domain"`
	Clear CacheClearCmd `cmd:"" help:"Remove every cached summary"`
}

// CacheCheckCmd is the "cache check" subcommand.
type CacheCheckCmd struct {
	Domain string `arg:"" help:"Domain, e.g. example.com"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"127.0.0.1:7878" help:"Listen address"`
}
