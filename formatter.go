package yoola

import "strings"

// FormatSummary renders a summary as Markdown-flavored plain text, suitable
// for the clipboard and for files.
// Empty sections are omitted.
func FormatSummary(s *Summary) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("# Terms Summary\n\n")
	if s.Domain != "" {
		b.WriteString("Source: " + s.Domain + "\n")
	}
	b.WriteString("Status: " + s.Badge() + "\n")

	writeList(&b, "Key Points", s.KeyPoints)
	writeParagraph(&b, "Data Collection", s.DataCollection)
	writeParagraph(&b, "Your Rights", s.UserRights)
	writeList(&b, "Important Alerts", s.Alerts)

	if src := s.SourceURL(); src != "" {
		b.WriteString("\nOriginal: " + src + "\n")
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n## " + title + "\n\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}

func writeParagraph(b *strings.Builder, title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.WriteString("\n## " + title + "\n\n" + text + "\n")
}
