package layout

import (
	"strings"
	"unicode"
)

// JoinBroken joins two adjacent line fragments, repairing line-wrap
// hyphenation at the join point. When the first fragment ends in a trailing
// hyphen that looks like a wrap artifact and the second begins with a
// lower-case letter, the hyphen is removed and the fragments concatenate
// with no space; otherwise they join with a single space, hyphen preserved.
//
// The decision is local and context-free: no dictionary lookup is made, so
// a legitimate compound split exactly at its hyphen is joined too. That
// false positive is accepted.
func JoinBroken(first, second string) string {
	if first == "" {
		return second
	}
	if second == "" {
		return first
	}
	if shouldMergeHyphen(first, second) {
		return strings.TrimSuffix(first, "-") + second
	}
	return first + " " + second
}

// shouldMergeHyphen decides whether a trailing hyphen is a wrap artifact.
// Merge requires <letter>- at the end of first, a lower-case letter at the
// start of second, and no earlier hyphen inside the pre-hyphen token (a
// token already containing a hyphen reads as a deliberate compound).
func shouldMergeHyphen(first, second string) bool {
	if !strings.HasSuffix(first, "-") {
		return false
	}

	firstRunes := []rune(first)
	if len(firstRunes) < 2 || !unicode.IsLetter(firstRunes[len(firstRunes)-2]) {
		return false
	}

	secondRunes := []rune(second)
	if !unicode.IsLower(secondRunes[0]) {
		return false
	}

	// Compound guard: inspect the token carrying the hyphen
	words := strings.Fields(first)
	lastWord := words[len(words)-1]
	if strings.Count(lastWord, "-") > 1 {
		return false
	}

	return true
}
