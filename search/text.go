package search

import (
	"slices"
	"strings"
)

// A hand-picked set of just the functional words from the 100 most-common
// english words list.
// http://oxforddictionaries.com/words/the-oec-facts-about-the-language
var stopWords = map[string]bool{
	"about": true, "after": true, "all": true, "also": true, "an": true,
	"and": true, "any": true, "as": true, "at": true,
	"back": true, "be": true, "because": true, "but": true, "by": true,
	"can": true, "come": true, "could": true,
	"day": true, "do": true,
	"even": true,
	"for": true, "from": true,
	"get": true, "go": true,
	"have": true, "he": true, "her": true, "him": true, "his": true,
	"how": true,
	"if": true, "in": true, "into": true, "it": true, "its": true,
	"just": true,
	"know": true,
	"like": true, "look": true,
	"make": true, "me": true, "most": true, "my": true,
	"new": true, "no": true, "not": true, "now": true,
	"of": true, "on": true, "one": true, "only": true, "or": true,
	"other": true, "our": true, "out": true, "over": true,
	"say": true, "see": true, "she": true, "so": true, "some": true,
	"take": true, "than": true, "that": true, "the": true, "their": true,
	"them": true, "then": true, "there": true, "these": true, "they": true,
	"think": true, "this": true, "to": true, "two": true,
	"up": true, "us": true, "use": true,
	"way": true, "we": true, "well": true, "what": true, "when": true,
	"which": true, "who": true, "will": true, "with": true, "work": true,
	"would": true,
	"you": true, "your": true,
}

// tokenize breaks a query into search tokens.
//
// The query is lower-cased and split on whitespace; stop words, tokens
// shorter than minLength, and duplicates are removed. First-seen order is
// preserved and the list is capped at maxTokens to limit abuse. Degenerate
// input yields an empty list, never an error.
func tokenize(query string, minLength, maxTokens int) []string {
	words := strings.Fields(strings.ToLower(query))

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if stopWords[word] {
			continue
		}
		if len([]rune(word)) < minLength {
			continue
		}
		if slices.Contains(tokens, word) {
			continue
		}
		tokens = append(tokens, word)
		if len(tokens) == maxTokens {
			break
		}
	}
	return tokens
}
