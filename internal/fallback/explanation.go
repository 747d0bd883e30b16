package fallback

import (
	"fmt"
	"strings"
)

// glossary holds short built-in explanations for the most common English
// function words, which are answered even when the service is down.
var glossary = map[string]string{
	"the":  "A definite article used to specify a particular noun.",
	"and":  "A conjunction used to connect words, phrases, or clauses.",
	"is":   `Third person singular present of "be"; indicates existence or identity.`,
	"of":   "A preposition expressing the relationship between a part and a whole.",
	"to":   "A preposition expressing direction, place, or position.",
	"in":   "A preposition expressing the situation of something that is surrounded by something else.",
	"for":  "A preposition used to indicate the purpose or intended recipient of something.",
	"with": "A preposition used to express accompaniment or association.",
	"on":   "A preposition expressing location or position in contact with and supported by a surface.",
	"at":   "A preposition expressing location or arrival in a particular place or position.",
}

// Explanation returns the text shown when a word cannot be explained by the
// service: a glossary entry for common words, otherwise a fixed apology that
// names the word.
func Explanation(word string) string {
	if text, ok := glossary[strings.ToLower(word)]; ok {
		return text
	}
	return fmt.Sprintf(
		"Sorry, we could not explain %q right now. This word may have multiple meanings depending on context; "+
			"consider looking it up in a dictionary for detailed definitions and usage examples.",
		word)
}
