package names

// Mutable is a name changed in place. Each mutator either applies its whole
// change or none of it: a failed postcondition restores the state held before
// the call. The zero value is an empty name using DefaultDelimiter. A Mutable
// is not safe for concurrent use.
type Mutable struct {
	core
}

func NewMutable(components []string, opts ...Option) (*Mutable, error) {
	c, err := build("new", components, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Mutable{core: c}, nil
}

func ParseMutable(s string, opts ...Option) (*Mutable, error) {
	c, err := parse("parse", s, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &Mutable{core: c}, nil
}

func (m *Mutable) apply(op string, mutate func(s store), expect delta) error {
	snapshot := m.store.clone()
	before := snapshot.components()
	mutate(m.store)
	after := m.store.components()
	if err := m.checkState(op); err != nil {
		m.store = snapshot
		return err
	}
	if !expect(before, after) {
		m.store = snapshot
		return postconditionFailed(op, before, after)
	}
	return nil
}

func (m *Mutable) SetComponent(i int, c string) error {
	const op = "set component"
	m.ensure()
	if err := m.checkState(op); err != nil {
		return err
	}
	if err := m.checkIndex(op, i); err != nil {
		return err
	}
	if err := checkComponent(op, c, m.delimiter); err != nil {
		return err
	}
	return m.apply(op, func(s store) { s.set(i, c) }, setDelta(i, c))
}

func (m *Mutable) Insert(i int, c string) error {
	const op = "insert"
	m.ensure()
	if err := m.checkState(op); err != nil {
		return err
	}
	if err := m.checkIndex(op, i); err != nil {
		return err
	}
	if err := checkComponent(op, c, m.delimiter); err != nil {
		return err
	}
	return m.apply(op, func(s store) { s.insert(i, c) }, insertDelta(i, c))
}

func (m *Mutable) Append(c string) error {
	const op = "append"
	m.ensure()
	if err := m.checkState(op); err != nil {
		return err
	}
	if err := checkComponent(op, c, m.delimiter); err != nil {
		return err
	}
	return m.apply(op, func(s store) { s.append(c) }, appendDelta(c))
}

func (m *Mutable) Remove(i int) error {
	const op = "remove"
	m.ensure()
	if err := m.checkState(op); err != nil {
		return err
	}
	if err := m.checkIndex(op, i); err != nil {
		return err
	}
	return m.apply(op, func(s store) { s.remove(i) }, removeDelta(i))
}

func (m *Mutable) Concat(other Reader) error {
	const op = "concat"
	if err := m.checkOther(op, other); err != nil {
		return err
	}
	m.ensure()
	if err := m.checkState(op); err != nil {
		return err
	}
	tail := other.Components()
	if err := checkComponents(op, tail, m.delimiter); err != nil {
		return err
	}
	return m.apply(op, func(s store) {
		for _, c := range tail {
			s.append(c)
		}
	}, concatDelta(tail))
}

func (m *Mutable) Clone() *Mutable {
	return &Mutable{core: m.copy()}
}

// Freeze returns a persistent copy of the current state.
func (m *Mutable) Freeze() Name {
	return &name{core: m.copy()}
}
