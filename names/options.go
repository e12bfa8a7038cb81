package names

import (
	"fmt"

	"github.com/yaroher/go-names/escape"
)

const (
	DefaultDelimiter = escape.DefaultDelimiter
	EscapeCharacter  = escape.Character
)

// Strategy selects how components are stored.
type Strategy int

const (
	// ArrayStrategy keeps one string per component.
	ArrayStrategy Strategy = iota
	// StringStrategy keeps a single delimited string.
	StringStrategy
)

func (s Strategy) String() string {
	switch s {
	case ArrayStrategy:
		return "array"
	case StringStrategy:
		return "string"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "array":
		return ArrayStrategy, nil
	case "string":
		return StringStrategy, nil
	}
	return 0, invalidArgument("strategy", "unknown strategy %q", s)
}

type config struct {
	delimiter rune
	strategy  Strategy
}

type Option func(*config)

func WithDelimiter(d rune) Option {
	return func(c *config) {
		c.delimiter = d
	}
}

func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

func newConfig(opts []Option) config {
	cfg := config{delimiter: DefaultDelimiter, strategy: ArrayStrategy}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
