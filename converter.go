package yoola

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms rendered view markup into Markdown for terminal
	// output.
	Convert(html string) (string, error)
}
