package extract

import "strings"

// minFactLength filters out fragments too short to be a meaningful fact
const minFactLength = 10

// Facts splits case text into sentence-level fact statements.
// Text is split on sentence terminators and fragments whose trimmed length
// exceeds minFactLength survive, in original order.
func Facts(text string) []string {
	var facts []string

	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	for _, fragment := range fragments {
		fact := strings.TrimSpace(fragment)
		if len(fact) > minFactLength {
			facts = append(facts, fact)
		}
	}

	return facts
}
