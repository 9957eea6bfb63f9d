// Package prompt builds the natural-language instruction sent to the
// completion API. Inputs are interpolated verbatim: the API consumes the whole
// string as prose, so no escaping is needed.
package prompt

import "fmt"

const recommendationTemplate = "Give me a list of %s %s to enjoy next, similar to my favourites: %s. " +
	"For each item include the author and the year it was published. " +
	"Order the list from the most to the least compatible with my favourites."

// Compose renders the fixed recommendation instruction. Pure and total; the
// same inputs always produce the same output.
func Compose(subject string, favourites string, quantity string) string {
	return fmt.Sprintf(recommendationTemplate, quantity, subject, favourites)
}
