package yoola

import "context"

// Message actions understood by a MessageHandler.
const (
	ActionSummarizeCurrentPage  = "summarizeCurrentPage"
	ActionSummarizeTermsLink    = "summarizeTermsLink"
	ActionGetSummaryInLanguage  = "getSummaryInLanguage"
	ActionGetAvailableLanguages = "getAvailableLanguages"
	ActionCheckForTerms         = "checkForTerms"
	ActionShowSummary           = "showSummary"
	ActionShowError             = "showError"
	ActionConfirmSummarize      = "confirmSummarize"
	ActionPing                  = "ping"
	ActionGetSettings           = "getSettings"
	ActionSaveSettings          = "saveSettings"
	ActionResetSettings         = "resetSettings"
	ActionCheckCache            = "checkCache"
	ActionClearCache            = "clearCache"
)

// Message is a request addressed to the application by action name.
type Message struct {
	Action    string          `json:"action"`
	URL       string          `json:"url,omitempty"`
	HTML      string          `json:"html,omitempty"`
	Text      string          `json:"text,omitempty"`
	Content   string          `json:"content,omitempty"`
	Domain    string          `json:"domain,omitempty"`
	Language  string          `json:"language,omitempty"`
	Confirmed bool            `json:"confirmed,omitempty"`
	Summary   *Summary        `json:"summary,omitempty"`
	Error     string          `json:"error,omitempty"`
	Settings  *SettingsUpdate `json:"settings,omitempty"`
}

// Response is the reply to a Message. Failures are reported in Error and
// never as transport errors.
type Response struct {
	Success   bool                  `json:"success,omitempty"`
	Error     string                `json:"error,omitempty"`
	Summary   *Summary              `json:"summary,omitempty"`
	Languages []Language            `json:"languages,omitempty"`
	Terms     *TermsDetectionResult `json:"terms,omitempty"`
	Settings  *Settings             `json:"settings,omitempty"`
	Cached    *bool                 `json:"cached,omitempty"`
	Data      *Summary              `json:"data,omitempty"`
	Confirm   bool                  `json:"confirm,omitempty"`
	HTML      string                `json:"html,omitempty"`
}

// MessageHandler answers Messages.
type MessageHandler interface {
	Handle(ctx context.Context, msg *Message) *Response
}
