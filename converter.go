package rndocs

// Converter converts raw page markup to Markdown.
type Converter interface {
	// Convert transforms markup into Markdown. It never fails; malformed
	// input produces degraded output.
	Convert(markup string) string
}
