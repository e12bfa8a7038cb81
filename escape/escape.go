package escape

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	Character        = '\\'
	DefaultDelimiter = '.'
)

// IsValidDelimiter reports whether d can separate components.
func IsValidDelimiter(d rune) bool {
	return d != Character && d != utf8.RuneError && utf8.ValidRune(d)
}

// ParseDelimiter accepts exactly one valid delimiter character.
func ParseDelimiter(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	d, _ := utf8.DecodeRuneInString(s)
	return d, IsValidDelimiter(d)
}

// Split cuts text at every delimiter that is not directly preceded by the
// escape character. Components keep their escape sequences.
func Split(text string, delimiter rune) []string {
	var (
		result []string
		start  int
		prev   rune
	)
	for i, r := range text {
		if r == delimiter && prev != Character {
			result = append(result, text[start:i])
			start = i + utf8.RuneLen(r)
		}
		prev = r
	}
	return append(result, text[start:])
}

// Join is the lossless inverse of Split.
func Join(components []string, delimiter rune) string {
	return strings.Join(components, string(delimiter))
}

// DisplayJoin unescapes the stored delimiter inside every component and joins
// the result with display. The output is for humans and does not round trip.
func DisplayJoin(components []string, stored, display rune) string {
	return strings.Join(lo.Map(components, func(c string, _ int) string {
		return Unescape(c, stored)
	}), string(display))
}

// Escape marks every delimiter in raw as literal.
func Escape(raw string, delimiter rune) string {
	d := string(delimiter)
	return strings.ReplaceAll(raw, d, string(Character)+d)
}

func Unescape(component string, delimiter rune) string {
	d := string(delimiter)
	return strings.ReplaceAll(component, string(Character)+d, d)
}

// IsWellFormed reports whether component survives Join followed by Split as a
// single component: every delimiter is escaped and the component does not end
// with a dangling escape character.
func IsWellFormed(component string, delimiter rune) bool {
	if strings.HasSuffix(component, string(Character)) {
		return false
	}
	var prev rune
	for _, r := range component {
		if r == delimiter && prev != Character {
			return false
		}
		prev = r
	}
	return true
}
