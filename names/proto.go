package names

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/yaroher/go-names/escape"
)

// ToStruct carries the data-string record as a protobuf Struct.
func ToStruct(n Reader) (*structpb.Struct, error) {
	if n == nil {
		return nil, invalidArgument("to struct", "name is nil")
	}
	r := recordOf(n)
	data := structpb.NewNullValue()
	if !r.null {
		data = structpb.NewStringValue(r.data)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"data":      data,
		"delimiter": structpb.NewStringValue(string(r.delimiter)),
	}}, nil
}

func FromStruct(s *structpb.Struct, opts ...Option) (Name, error) {
	const op = "from struct"
	if s == nil {
		return nil, invalidArgument(op, "struct is nil")
	}
	dv, ok := s.GetFields()["delimiter"]
	if !ok {
		return nil, invalidArgument(op, "struct has no delimiter")
	}
	d, ok := escape.ParseDelimiter(dv.GetStringValue())
	if !ok {
		return nil, invalidArgument(op, "delimiter %q must be a single character other than %q", dv.GetStringValue(), EscapeCharacter)
	}
	r := record{null: true, delimiter: d}
	if v, ok := s.GetFields()["data"]; ok {
		switch k := v.GetKind().(type) {
		case *structpb.Value_NullValue:
		case *structpb.Value_StringValue:
			r.data, r.null = k.StringValue, false
		default:
			return nil, invalidArgument(op, "data must be a string or null")
		}
	}
	c, err := r.build(op, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return &name{core: c}, nil
}
