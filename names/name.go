package names

// Name is a persistent hierarchical name. Mutators leave the receiver
// untouched and return a new, independent Name; a candidate that fails its
// postcondition is never returned. A Name is safe for concurrent use.
type Name interface {
	Reader
	SetComponent(i int, c string) (Name, error)
	// Insert places c at i, shifting later components right. Inserting at
	// NoComponents() is done with Append.
	Insert(i int, c string) (Name, error)
	Append(c string) (Name, error)
	Remove(i int) (Name, error)
	Concat(other Reader) (Name, error)
	Clone() Name
	// Thaw returns an independent in-place copy.
	Thaw() *Mutable
}

type name struct {
	core
}

// New builds a name from raw components. Delimiters inside a component must
// be escaped (see escape.Escape).
func New(components []string, opts ...Option) (Name, error) {
	c, err := build("new", components, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &name{core: c}, nil
}

// Parse splits s at every unescaped delimiter.
func Parse(s string, opts ...Option) (Name, error) {
	c, err := parse("parse", s, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &name{core: c}, nil
}

func (n *name) derive(op string, mutate func(s store), expect delta) (Name, error) {
	next := &name{core: n.copy()}
	mutate(next.store)
	before, after := n.store.components(), next.store.components()
	if err := next.checkState(op); err != nil {
		return nil, err
	}
	if !expect(before, after) {
		return nil, postconditionFailed(op, before, after)
	}
	return next, nil
}

func (n *name) SetComponent(i int, c string) (Name, error) {
	const op = "set component"
	if err := n.checkState(op); err != nil {
		return nil, err
	}
	if err := n.checkIndex(op, i); err != nil {
		return nil, err
	}
	if err := checkComponent(op, c, n.delimiter); err != nil {
		return nil, err
	}
	return n.derive(op, func(s store) { s.set(i, c) }, setDelta(i, c))
}

func (n *name) Insert(i int, c string) (Name, error) {
	const op = "insert"
	if err := n.checkState(op); err != nil {
		return nil, err
	}
	if err := n.checkIndex(op, i); err != nil {
		return nil, err
	}
	if err := checkComponent(op, c, n.delimiter); err != nil {
		return nil, err
	}
	return n.derive(op, func(s store) { s.insert(i, c) }, insertDelta(i, c))
}

func (n *name) Append(c string) (Name, error) {
	const op = "append"
	if err := n.checkState(op); err != nil {
		return nil, err
	}
	if err := checkComponent(op, c, n.delimiter); err != nil {
		return nil, err
	}
	return n.derive(op, func(s store) { s.append(c) }, appendDelta(c))
}

func (n *name) Remove(i int) (Name, error) {
	const op = "remove"
	if err := n.checkState(op); err != nil {
		return nil, err
	}
	if err := n.checkIndex(op, i); err != nil {
		return nil, err
	}
	return n.derive(op, func(s store) { s.remove(i) }, removeDelta(i))
}

func (n *name) Concat(other Reader) (Name, error) {
	const op = "concat"
	if err := n.checkOther(op, other); err != nil {
		return nil, err
	}
	if err := n.checkState(op); err != nil {
		return nil, err
	}
	tail := other.Components()
	if err := checkComponents(op, tail, n.delimiter); err != nil {
		return nil, err
	}
	return n.derive(op, func(s store) {
		for _, c := range tail {
			s.append(c)
		}
	}, concatDelta(tail))
}

func (n *name) Clone() Name {
	return &name{core: n.copy()}
}

func (n *name) Thaw() *Mutable {
	return &Mutable{core: n.copy()}
}
