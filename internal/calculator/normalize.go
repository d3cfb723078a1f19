package calculator

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxPhraseLength bounds the input accepted by Normalize.
const MaxPhraseLength = 200

// ErrInputTooLong is returned for phrases above MaxPhraseLength.
var ErrInputTooLong = errors.New("input too long")

type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// rewrites run in order over the lower-cased phrase. Each pass is a global
// substitution; RE2 keeps every pass linear in the phrase length. Longer
// alternatives come first so "addition" is not split into "add" + "ition".
var rewrites = []rewrite{
	{regexp.MustCompile(`(addition|add|plus|positive|sum)+`), "+"},
	{regexp.MustCompile(`(subtraction|subtract|minus|negative)+`), "-"},
	{regexp.MustCompile(`(divided by|divided|division|over)+`), "/"},
	{regexp.MustCompile(`(multiplied by|multiplication|multiply|times|product)`), "*"},
	{regexp.MustCompile(`factorial`), "!"},
	// A period ends a sentence unless it sits before a digit.
	{regexp.MustCompile(`\.([^0-9]|$)`), "$1"},
	{regexp.MustCompile(`(and|with|to|by|from|find|calculate|what|is|the|value|of|result|\?|answer|expression| )`), ""},
	// "factorial 5" reads as 5!.
	{regexp.MustCompile(`(^|[-+*/])!([0-9]+(?:\.[0-9]+)?)`), "${1}${2}!"},
	{regexp.MustCompile(`^[!/*]`), ""},
	{regexp.MustCompile(`[-+/*]$`), ""},
}

// Normalize rewrites a natural-language phrase into a canonical arithmetic
// string such as "3+4" or "5!".
func Normalize(phrase string) (string, error) {
	if utf8.RuneCountInString(phrase) > MaxPhraseLength {
		return "", ErrInputTooLong
	}

	s := strings.ToLower(phrase)
	for _, rw := range rewrites {
		s = rw.pattern.ReplaceAllString(s, rw.repl)
	}
	return s, nil
}
