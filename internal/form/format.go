package form

import "strings"

const leadingArtifact = "\n\n"

// FormatResponse strips the cosmetic two-newline prefix some completions carry
// and returns everything else unchanged. A message consisting of the prefix
// alone becomes the empty string.
func FormatResponse(text string) string {
	if strings.HasPrefix(text, leadingArtifact) {
		return text[len(leadingArtifact):]
	}
	return text
}
