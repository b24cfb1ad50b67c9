package explaincard

import "strings"

const maxMinedVocab = 4

// stemStopwords filters function words out of the stem scan.
var stemStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "of": true, "to": true, "in": true, "on": true,
	"at": true, "by": true, "for": true, "with": true, "from": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "has": true, "have": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "may": true, "might": true,
	"this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "he": true, "she": true, "they": true,
	"his": true, "her": true, "their": true, "we": true, "you": true,
	"not": true, "no": true, "so": true, "as": true, "if": true,
	"which": true, "what": true, "who": true, "when": true, "where": true,
	"there": true, "here": true, "than": true, "then": true,
	"all": true, "each": true, "every": true, "some": true, "any": true,
	"one": true, "two": true, "more": true, "most": true, "very": true,
	"about": true, "into": true, "over": true, "under": true, "up": true,
	"out": true, "down": true, "following": true, "best": true,
	"answer": true, "choose": true, "blank": true, "question": true,
}

// contextVocab merges upstream vocab entries with terms mined from the
// question stem. Mined terms exclude words already used in option text
// and get a synthesized context note when no upstream gloss exists.
func contextVocab(card *NormalizedCard) []VocabEntry {
	entries := append([]VocabEntry(nil), card.Vocab...)

	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[strings.ToLower(e.Word)] = true
	}

	optionWords := make(map[string]bool)
	for _, opt := range card.Options {
		for _, w := range splitWords(opt.Label) {
			optionWords[w] = true
		}
	}

	mined := 0
	for _, w := range splitWords(card.Question) {
		if mined == maxMinedVocab {
			break
		}
		if len(w) < 4 || stemStopwords[w] || optionWords[w] || known[w] {
			continue
		}
		known[w] = true
		entries = append(entries, VocabEntry{
			Word: w,
			Note: "語境：題幹「" + w + "」",
		})
		mined++
	}

	return entries
}

// splitWords lowercases and extracts latin words.
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && r != '\''
	})
}
