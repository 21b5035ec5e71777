// Package gemini implements yoola.Summarizer on top of Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/yoola"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used unless overridden.
const DefaultModel = "gemini-2.5-flash"

// MaxPromptContent is how many characters of page content go into a prompt.
const MaxPromptContent = 24000

// Ensure Summarizer implements yoola.Summarizer at compile time.
var _ yoola.Summarizer = (*Summarizer)(nil)

// Summarizer asks Gemini for a structured summary of terms content.
type Summarizer struct {
	client *genai.Client
	model  string

	// Now returns the current time. Overridable for tests.
	Now func() time.Time
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model, Now: time.Now}
}

// Summarize sends the content to Gemini and parses the JSON answer.
func (s *Summarizer) Summarize(ctx context.Context, req *yoola.SummaryRequest) (*yoola.Summary, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "No content provided")
	}
	if req.Language == "" {
		return nil, yoola.Errorf(yoola.EINVALID, "language required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(req)}},
		}},
		BuildConfig(req.Language),
	)
	if err != nil {
		return nil, yoola.Errorf(yoola.EUNAVAILABLE, "Gemini request failed: %v", err)
	}
	if result == nil {
		return nil, yoola.Errorf(yoola.EMALFORMED, "No data returned from API")
	}

	summary, err := ParseSummary(result.Text(), req.Language)
	if err != nil {
		return nil, err
	}
	summary.CreatedAt = s.Now().UTC()
	summary.OriginalURL = req.URL
	return summary, nil
}

// BuildConfig returns the GenerateContentConfig for a summary in language.
func BuildConfig(language string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: fmt.Sprintf("You are a meticulous legal expert. You always output valid JSON as instructed. The summary must be in %s.", strings.ToUpper(language)),
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the prompt asking for the structured summary.
func BuildUserPrompt(req *yoola.SummaryRequest) string {
	content := req.Content
	if r := []rune(content); len(r) > MaxPromptContent {
		content = string(r[:MaxPromptContent]) + "..."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the terms of service of %s (%s) for an ordinary user.\n", req.Domain, req.URL)
	fmt.Fprintf(&sb, "Write every value in %s.\n\n", req.Language)
	sb.WriteString("Respond with a single JSON object of this shape:\n")
	sb.WriteString("{\n")
	fmt.Fprintf(&sb, "  \"language_code\": %q,\n", req.Language)
	sb.WriteString("  \"key_points\": [\"5-7 crucial points, each a complete sentence\"],\n")
	sb.WriteString("  \"data_collection_summary\": \"what data is collected, how it is used and whether it is shared\",\n")
	sb.WriteString("  \"user_rights_summary\": \"the user's rights over data, content, account termination and disputes\",\n")
	sb.WriteString("  \"alerts_and_warnings\": [\"2-3 clauses the user must be aware of\"]\n")
	sb.WriteString("}\n\n")
	sb.WriteString("Terms to analyze:\n---\n")
	sb.WriteString(content)
	sb.WriteString("\n---\n")
	return sb.String()
}

type structuredSummary struct {
	LanguageCode          string   `json:"language_code"`
	KeyPoints             []string `json:"key_points"`
	DataCollectionSummary string   `json:"data_collection_summary"`
	UserRightsSummary     string   `json:"user_rights_summary"`
	AlertsAndWarnings     []string `json:"alerts_and_warnings"`
}

// ParseSummary decodes the model answer. Code fences around the JSON are
// tolerated, as is a {"structured_summary": {...}} wrapper.
func ParseSummary(text, language string) (*yoola.Summary, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, yoola.Errorf(yoola.EMALFORMED, "No data returned from API")
	}

	var wrapper struct {
		StructuredSummary *structuredSummary `json:"structured_summary"`
	}
	if err := json.Unmarshal([]byte(text), &wrapper); err != nil {
		return nil, yoola.Errorf(yoola.EMALFORMED, "Malformed model response: %v", err)
	}

	ss := wrapper.StructuredSummary
	if ss == nil {
		ss = &structuredSummary{}
		if err := json.Unmarshal([]byte(text), ss); err != nil {
			return nil, yoola.Errorf(yoola.EMALFORMED, "Malformed model response: %v", err)
		}
	}

	if len(ss.KeyPoints) == 0 {
		return nil, yoola.Errorf(yoola.EMALFORMED, "Model response has no key points")
	}
	if ss.LanguageCode != "" && !strings.EqualFold(ss.LanguageCode, language) {
		return nil, yoola.Errorf(yoola.EMALFORMED, "Model answered in %q instead of %q", ss.LanguageCode, language)
	}

	alerts := ss.AlertsAndWarnings
	if alerts == nil {
		alerts = []string{}
	}
	return &yoola.Summary{
		KeyPoints:      ss.KeyPoints,
		DataCollection: ss.DataCollectionSummary,
		UserRights:     ss.UserRightsSummary,
		Alerts:         alerts,
	}, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
