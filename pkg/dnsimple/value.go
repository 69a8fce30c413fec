package dnsimple

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies the shape held by a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindObject
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an immutable dynamic JSON value. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	flag bool
	obj  *Object
	list []Value
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue wraps an integer.
func IntValue(n int64) Value { return Value{kind: KindInt, num: n} }

// FloatValue wraps a floating point number.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

// ObjectValue wraps an object.
func ObjectValue(o *Object) Value {
	if o == nil {
		return Value{}
	}

	return Value{kind: KindObject, obj: o}
}

// ListValue wraps a list. The slice is copied.
func ListValue(items []Value) Value {
	return Value{kind: KindList, list: append([]Value(nil), items...)}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) mismatch(want Kind) error {
	return &ShapeError{Want: want.String(), Got: v.kind.String()}
}

// Str returns the string held by the value.
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}

	return v.str, nil
}

// Int returns the integer held by the value.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}

	return v.num, nil
}

// Float returns the number held by the value. Integers widen to float64.
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.flt, nil
	case KindInt:
		return float64(v.num), nil
	default:
		return 0, v.mismatch(KindFloat)
	}
}

// Bool returns the boolean held by the value.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}

	return v.flag, nil
}

// Object returns the object held by the value.
func (v Value) Object() (*Object, error) {
	if v.kind != KindObject {
		return nil, v.mismatch(KindObject)
	}

	return v.obj, nil
}

// List returns a copy of the items held by the value.
func (v Value) List() ([]Value, error) {
	if v.kind != KindList {
		return nil, v.mismatch(KindList)
	}

	return append([]Value(nil), v.list...), nil
}

// Interface converts the value to plain Go values: nil, string, int64,
// float64, bool, map[string]any or []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.flag
	case KindObject:
		return v.obj.Map()
	case KindList:
		items := make([]any, len(v.list))
		for i, item := range v.list {
			items[i] = item.Interface()
		}

		return items
	default:
		return nil
	}
}

// Text renders scalars without quoting and composites as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("<%v>", err)
		}

		return string(data)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindInt:
		return []byte(strconv.FormatInt(v.num, 10)), nil
	case KindFloat:
		return json.Marshal(v.flt)
	case KindBool:
		return json.Marshal(v.flag)
	case KindObject:
		return v.obj.MarshalJSON()
	case KindList:
		var buf bytes.Buffer

		buf.WriteByte('[')

		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}

			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf.Write(data)
		}

		buf.WriteByte(']')

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("marshaling %s: %w", v.kind, ErrShapeMismatch)
	}
}

// MarshalYAML implements yaml.Marshaler, keeping object key order.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.num, 10)}
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v.flt, 'g', -1, 64)}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.flag)}
	case KindObject:
		return v.obj.yamlNode()
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.list {
			node.Content = append(node.Content, item.yamlNode())
		}

		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// Object is an immutable JSON object that remembers key order.
type Object struct {
	keys   []string
	fields map[string]Value
}

// ObjectBuilder assembles an Object. It is not safe for concurrent use;
// the Object it produces is.
type ObjectBuilder struct {
	keys   []string
	fields map[string]Value
}

// NewObjectBuilder returns an empty builder.
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{fields: make(map[string]Value)}
}

// Set stores a field. Setting an existing key replaces the value and keeps
// its original position.
func (b *ObjectBuilder) Set(key string, value Value) *ObjectBuilder {
	if _, exists := b.fields[key]; !exists {
		b.keys = append(b.keys, key)
	}

	b.fields[key] = value

	return b
}

// Build returns the finished object. The builder must not be reused.
func (b *ObjectBuilder) Build() *Object {
	obj := &Object{keys: b.keys, fields: b.fields}
	b.keys = nil
	b.fields = nil

	return obj
}

// EmptyObject returns an object with no fields.
func EmptyObject() *Object {
	return &Object{fields: map[string]Value{}}
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the field names in source order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return append([]string(nil), o.keys...)
}

// Has reports whether the field exists.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}

	_, ok := o.fields[key]

	return ok
}

// Get returns the named field.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}

	v, ok := o.fields[key]

	return v, ok
}

func (o *Object) lookup(key string) (Value, error) {
	v, ok := o.Get(key)
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrFieldNotFound, key)
	}

	return v, nil
}

// GetString returns the named string field.
func (o *Object) GetString(key string) (string, error) {
	v, err := o.lookup(key)
	if err != nil {
		return "", err
	}

	s, err := v.Str()
	if err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}

	return s, nil
}

// GetInt returns the named integer field.
func (o *Object) GetInt(key string) (int64, error) {
	v, err := o.lookup(key)
	if err != nil {
		return 0, err
	}

	n, err := v.Int()
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}

	return n, nil
}

// GetFloat returns the named numeric field.
func (o *Object) GetFloat(key string) (float64, error) {
	v, err := o.lookup(key)
	if err != nil {
		return 0, err
	}

	f, err := v.Float()
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}

	return f, nil
}

// GetBool returns the named boolean field.
func (o *Object) GetBool(key string) (bool, error) {
	v, err := o.lookup(key)
	if err != nil {
		return false, err
	}

	b, err := v.Bool()
	if err != nil {
		return false, fmt.Errorf("field %q: %w", key, err)
	}

	return b, nil
}

// GetObject returns the named nested object.
func (o *Object) GetObject(key string) (*Object, error) {
	v, err := o.lookup(key)
	if err != nil {
		return nil, err
	}

	nested, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}

	return nested, nil
}

// GetList returns the named nested list.
func (o *Object) GetList(key string) ([]Value, error) {
	v, err := o.lookup(key)
	if err != nil {
		return nil, err
	}

	items, err := v.List()
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}

	return items, nil
}

// Unwrap returns the object nested under key when it is the only field,
// and the receiver otherwise. DNSimple v1 wraps resources as
// {"domain": {...}}.
func (o *Object) Unwrap(key string) *Object {
	if o.Len() != 1 {
		return o
	}

	nested, err := o.GetObject(key)
	if err != nil {
		return o
	}

	return nested
}

// Map converts the object to a plain map.
func (o *Object) Map() map[string]any {
	if o == nil {
		return nil
	}

	out := make(map[string]any, len(o.keys))
	for _, key := range o.keys {
		out[key] = o.fields[key].Interface()
	}

	return out
}

// MarshalJSON implements json.Marshaler, keeping key order.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')

		data, err := o.fields[key].MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(data)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, keeping key order.
func (o *Object) MarshalYAML() (interface{}, error) {
	return o.yamlNode(), nil
}

func (o *Object) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if o == nil {
		return node
	}

	for _, key := range o.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			o.fields[key].yamlNode(),
		)
	}

	return node
}
