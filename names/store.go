package names

import (
	"fmt"
	"slices"

	"github.com/yaroher/go-names/escape"
)

// store is the storage strategy behind a name. Index arguments are validated
// by the caller.
type store interface {
	strategy() Strategy
	count() int
	component(i int) string
	components() []string
	set(i int, c string)
	insert(i int, c string)
	append(c string)
	remove(i int)
	clone() store
	// verify reports a broken internal invariant, or "" when the store is sound.
	verify(delimiter rune) string
}

func newStore(s Strategy, delimiter rune, components []string) store {
	if s == StringStrategy {
		return newStringStore(delimiter, components)
	}
	return &arrayStore{comps: slices.Clone(components)}
}

type arrayStore struct {
	comps []string
}

func (s *arrayStore) strategy() Strategy { return ArrayStrategy }

func (s *arrayStore) count() int { return len(s.comps) }

func (s *arrayStore) component(i int) string { return s.comps[i] }

func (s *arrayStore) components() []string { return slices.Clone(s.comps) }

func (s *arrayStore) set(i int, c string) { s.comps[i] = c }

func (s *arrayStore) insert(i int, c string) { s.comps = slices.Insert(s.comps, i, c) }

func (s *arrayStore) append(c string) { s.comps = append(s.comps, c) }

func (s *arrayStore) remove(i int) { s.comps = slices.Delete(s.comps, i, i+1) }

func (s *arrayStore) clone() store { return &arrayStore{comps: slices.Clone(s.comps)} }

func (s *arrayStore) verify(delimiter rune) string {
	for i, c := range s.comps {
		if !escape.IsWellFormed(c, delimiter) {
			return fmt.Sprintf("component %d is malformed", i)
		}
	}
	return ""
}

// stringStore keeps the lossless joined form. A joined string cannot tell
// "no components" from "one empty component", so the former is flagged.
type stringStore struct {
	delimiter rune
	data      string
	empty     bool
}

func newStringStore(delimiter rune, components []string) *stringStore {
	if len(components) == 0 {
		return &stringStore{delimiter: delimiter, empty: true}
	}
	return &stringStore{delimiter: delimiter, data: escape.Join(components, delimiter)}
}

func (s *stringStore) strategy() Strategy { return StringStrategy }

func (s *stringStore) split() []string {
	if s.empty {
		return nil
	}
	return escape.Split(s.data, s.delimiter)
}

func (s *stringStore) reset(components []string) {
	*s = *newStringStore(s.delimiter, components)
}

func (s *stringStore) count() int { return len(s.split()) }

func (s *stringStore) component(i int) string { return s.split()[i] }

func (s *stringStore) components() []string { return s.split() }

func (s *stringStore) set(i int, c string) {
	comps := s.split()
	comps[i] = c
	s.reset(comps)
}

func (s *stringStore) insert(i int, c string) {
	s.reset(slices.Insert(s.split(), i, c))
}

func (s *stringStore) append(c string) {
	if s.empty {
		s.data, s.empty = c, false
		return
	}
	s.data += string(s.delimiter) + c
}

func (s *stringStore) remove(i int) {
	comps := s.split()
	s.reset(slices.Delete(comps, i, i+1))
}

func (s *stringStore) clone() store {
	c := *s
	return &c
}

func (s *stringStore) verify(delimiter rune) string {
	if s.delimiter != delimiter {
		return "stored delimiter differs from name delimiter"
	}
	if s.empty && s.data != "" {
		return "empty name carries data"
	}
	return ""
}
