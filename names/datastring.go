package names

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yaroher/go-names/escape"
	"github.com/yaroher/go-names/logger"
)

// record is the data-string form of a name: the escape-preserving joined
// components and the delimiter. A name without components has null data,
// which keeps it apart from a name holding one empty component.
type record struct {
	data      string
	null      bool
	delimiter rune
}

func recordOf(r Reader) record {
	if r.NoComponents() == 0 {
		return record{null: true, delimiter: r.Delimiter()}
	}
	return record{data: escape.Join(r.Components(), r.Delimiter()), delimiter: r.Delimiter()}
}

func (r record) components() []string {
	if r.null {
		return nil
	}
	return escape.Split(r.data, r.delimiter)
}

func (r record) build(op string, cfg config) (core, error) {
	cfg.delimiter = r.delimiter
	return build(op, r.components(), cfg)
}

func (r record) String() string {
	var e jx.Encoder
	r.MarshalJX(&e)
	return string(e.Bytes())
}

func (r record) MarshalJX(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("data")
	if r.null {
		e.Null()
	} else {
		e.Str(r.data)
	}
	e.FieldStart("delimiter")
	e.Str(string(r.delimiter))
	e.ObjEnd()
}

func (r *record) UnmarshalJX(d *jx.Decoder) error {
	r.null = true
	var delimiter string
	seen := false
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "data":
			if d.Next() == jx.Null {
				r.null = true
				return d.Null()
			}
			val, err := d.Str()
			if err != nil {
				return err
			}
			r.data, r.null = val, false
		case "delimiter":
			val, err := d.Str()
			if err != nil {
				return err
			}
			delimiter, seen = val, true
		default:
			return d.Skip()
		}
		return nil
	})
	if err != nil {
		return invalidArgument("decode", "malformed data string: %v", err)
	}
	if !seen {
		return invalidArgument("decode", "data string has no delimiter")
	}
	dr, ok := escape.ParseDelimiter(delimiter)
	if !ok {
		return invalidArgument("decode", "delimiter %q must be a single character other than %q", delimiter, EscapeCharacter)
	}
	r.delimiter = dr
	return nil
}

func decodeRecord(data []byte) (record, error) {
	var r record
	d := jx.DecodeBytes(data)
	err := r.UnmarshalJX(d)
	if err == nil {
		// only whitespace may follow the record
		if skipErr := d.Skip(); !errors.Is(skipErr, io.EOF) {
			err = invalidArgument("decode", "unexpected data after record")
		}
	}
	if err != nil {
		logger.Debug("data string rejected", zap.ByteString("data", data), zap.Error(err))
		return record{}, err
	}
	return r, nil
}

// ParseDataString reconstructs a name from DataString output. The delimiter
// is taken from the record; WithDelimiter is ignored.
func ParseDataString(s string, opts ...Option) (Name, error) {
	r, err := decodeRecord([]byte(s))
	if err != nil {
		return nil, err
	}
	c, err := r.build("decode", newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &name{core: c}, nil
}

func (c *core) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	recordOf(c).MarshalJX(&e)
	return e.Bytes(), nil
}

// UnmarshalJSON replaces the whole state, keeping the current strategy.
func (m *Mutable) UnmarshalJSON(data []byte) error {
	r, err := decodeRecord(data)
	if err != nil {
		return err
	}
	return m.reset(r)
}

func (m *Mutable) reset(r record) error {
	cfg := config{strategy: ArrayStrategy}
	if m.store != nil {
		cfg.strategy = m.store.strategy()
	}
	c, err := r.build("decode", cfg)
	if err != nil {
		return err
	}
	m.core = c
	return nil
}

type yamlRecord struct {
	Data      *string `yaml:"data"`
	Delimiter string  `yaml:"delimiter"`
}

func (c *core) MarshalYAML() (any, error) {
	r := recordOf(c)
	out := yamlRecord{Delimiter: string(r.delimiter)}
	if !r.null {
		out.Data = &r.data
	}
	return out, nil
}

func (m *Mutable) UnmarshalYAML(value *yaml.Node) error {
	var in yamlRecord
	if err := value.Decode(&in); err != nil {
		return invalidArgument("decode", "malformed yaml record: %v", err)
	}
	d, ok := escape.ParseDelimiter(in.Delimiter)
	if !ok {
		return invalidArgument("decode", "delimiter %q must be a single character other than %q", in.Delimiter, EscapeCharacter)
	}
	r := record{null: in.Data == nil, delimiter: d}
	if in.Data != nil {
		r.data = *in.Data
	}
	return m.reset(r)
}
