package names

import (
	"hash/fnv"
	"slices"

	"github.com/yaroher/go-names/escape"
)

// Reader is the read-only capability shared by persistent and mutable names.
type Reader interface {
	Delimiter() rune
	Strategy() Strategy
	NoComponents() int
	Component(i int) (string, error)
	// Components returns a copy of the raw (still escaped) components.
	Components() []string
	IsEmpty() bool
	// AsString renders the name for humans, joined with d.
	AsString(d rune) (string, error)
	// DataString is the lossless serialization accepted by ParseDataString.
	DataString() string
	HashCode() uint64
	Equal(other Reader) (bool, error)
	String() string
}

type core struct {
	delimiter rune
	original  rune
	store     store
}

func build(op string, components []string, cfg config) (core, error) {
	if err := checkDelimiter(op, cfg.delimiter); err != nil {
		return core{}, err
	}
	if err := checkComponents(op, components, cfg.delimiter); err != nil {
		return core{}, err
	}
	c := core{
		delimiter: cfg.delimiter,
		original:  cfg.delimiter,
		store:     newStore(cfg.strategy, cfg.delimiter, components),
	}
	if got := c.store.components(); !slices.Equal(got, components) {
		return core{}, postconditionFailed(op, components, got)
	}
	return c, nil
}

func parse(op string, s string, cfg config) (core, error) {
	if err := checkDelimiter(op, cfg.delimiter); err != nil {
		return core{}, err
	}
	return build(op, escape.Split(s, cfg.delimiter), cfg)
}

// ensure turns the zero value into an empty array-backed name with the
// default delimiter.
func (c *core) ensure() {
	if c.store == nil {
		*c = core{delimiter: DefaultDelimiter, original: DefaultDelimiter, store: &arrayStore{}}
	}
}

func (c *core) copy() core {
	c.ensure()
	return core{delimiter: c.delimiter, original: c.original, store: c.store.clone()}
}

func (c *core) Delimiter() rune {
	c.ensure()
	return c.delimiter
}

func (c *core) Strategy() Strategy {
	c.ensure()
	return c.store.strategy()
}

func (c *core) NoComponents() int {
	c.ensure()
	return c.store.count()
}

func (c *core) Component(i int) (string, error) {
	c.ensure()
	if err := c.checkState("component"); err != nil {
		return "", err
	}
	if err := c.checkIndex("component", i); err != nil {
		return "", err
	}
	return c.store.component(i), nil
}

func (c *core) Components() []string {
	c.ensure()
	return c.store.components()
}

func (c *core) IsEmpty() bool {
	c.ensure()
	return c.store.count() == 0
}

func (c *core) String() string {
	c.ensure()
	return escape.DisplayJoin(c.store.components(), c.delimiter, c.delimiter)
}

func (c *core) AsString(d rune) (string, error) {
	if err := checkDelimiter("as string", d); err != nil {
		return "", err
	}
	c.ensure()
	if err := c.checkState("as string"); err != nil {
		return "", err
	}
	return escape.DisplayJoin(c.store.components(), c.delimiter, d), nil
}

func (c *core) DataString() string {
	return recordOf(c).String()
}

// HashCode is FNV-1a over the data string, so equal names hash equally.
func (c *core) HashCode() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(c.DataString()))
	return h.Sum64()
}

// Equal compares delimiter and components; names stored with different
// strategies compare equal when their content matches.
func (c *core) Equal(other Reader) (bool, error) {
	if err := c.checkOther("equal", other); err != nil {
		return false, err
	}
	c.ensure()
	if err := c.checkState("equal"); err != nil {
		return false, err
	}
	if other.Delimiter() != c.delimiter || other.NoComponents() != c.store.count() {
		return false, nil
	}
	if !slices.Equal(c.store.components(), other.Components()) {
		return false, nil
	}
	if c.HashCode() != other.HashCode() {
		return false, postconditionFailed("equal", c.store.components(), other.Components())
	}
	return true, nil
}
