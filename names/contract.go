package names

import (
	"slices"

	"github.com/samber/lo"

	"github.com/yaroher/go-names/escape"
)

func checkDelimiter(op string, d rune) error {
	if !escape.IsValidDelimiter(d) {
		return invalidArgument(op, "delimiter %q must be a single character other than %q", d, EscapeCharacter)
	}
	return nil
}

func checkComponent(op string, c string, d rune) error {
	if !escape.IsWellFormed(c, d) {
		return invalidArgument(op, "component %q has an unescaped %q or a trailing %q", c, d, EscapeCharacter)
	}
	return nil
}

func checkComponents(op string, components []string, d rune) error {
	c, i, found := lo.FindIndexOf(components, func(c string) bool {
		return !escape.IsWellFormed(c, d)
	})
	if found {
		return invalidArgument(op, "component %d (%q) has an unescaped %q or a trailing %q", i, c, d, EscapeCharacter)
	}
	return nil
}

func (c *core) checkIndex(op string, i int) error {
	if n := c.store.count(); i < 0 || i >= n {
		return invalidArgument(op, "index %d out of range [0, %d)", i, n)
	}
	return nil
}

func (c *core) checkOther(op string, other Reader) error {
	absent := false
	switch o := other.(type) {
	case nil:
		absent = true
	case *Mutable:
		absent = o == nil
	case *name:
		absent = o == nil
	}
	if absent {
		return invalidArgument(op, "other name is nil")
	}
	return nil
}

// checkState verifies the instance invariants before an operation runs.
func (c *core) checkState(op string) error {
	if c.delimiter != c.original {
		return invalidState(op, "delimiter %q changed from %q", c.delimiter, c.original)
	}
	if !escape.IsValidDelimiter(c.delimiter) {
		return invalidState(op, "delimiter %q is not valid", c.delimiter)
	}
	if reason := c.store.verify(c.delimiter); reason != "" {
		return invalidState(op, "%s", reason)
	}
	return nil
}

// delta describes the exact change a mutator must have produced.
type delta func(before, after []string) bool

func setDelta(i int, c string) delta {
	return func(before, after []string) bool {
		return len(after) == len(before) &&
			slices.Equal(before[:i], after[:i]) &&
			after[i] == c &&
			slices.Equal(before[i+1:], after[i+1:])
	}
}

func insertDelta(i int, c string) delta {
	return func(before, after []string) bool {
		return len(after) == len(before)+1 &&
			slices.Equal(before[:i], after[:i]) &&
			after[i] == c &&
			slices.Equal(before[i:], after[i+1:])
	}
}

func appendDelta(c string) delta {
	return func(before, after []string) bool {
		return len(after) == len(before)+1 &&
			slices.Equal(before, after[:len(before)]) &&
			after[len(before)] == c
	}
}

func removeDelta(i int) delta {
	return func(before, after []string) bool {
		return len(after) == len(before)-1 &&
			slices.Equal(before[:i], after[:i]) &&
			slices.Equal(before[i+1:], after[i:])
	}
}

func concatDelta(other []string) delta {
	return func(before, after []string) bool {
		return len(after) == len(before)+len(other) &&
			slices.Equal(before, after[:len(before)]) &&
			slices.Equal(other, after[len(before):])
	}
}
