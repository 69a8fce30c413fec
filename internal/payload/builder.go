// Package payload builds JSON request bodies from sparse argument sets.
//
// Required fields fail on absence only: a nil value is missing, an empty
// string is accepted and sent. Optional fields are copied only when present
// and, for strings, non-blank after trimming. Absent optionals never emit a
// null or an empty string.
package payload

import (
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// Builder collects the fields of one JSON object. Nested builders report
// their validation failures to the root, so Build on the root returns every
// failure of the whole tree.
type Builder struct {
	wrapper  string
	fields   map[string]any
	children map[string]*Builder
	root     *Builder
	errs     *multierror.Error
}

// New returns a builder whose fields nest under wrapper. An empty wrapper
// produces a flat object.
func New(wrapper string) *Builder {
	b := &Builder{
		wrapper:  wrapper,
		fields:   make(map[string]any),
		children: make(map[string]*Builder),
	}
	b.root = b

	return b
}

// Required adds a field that must be present.
func (b *Builder) Required(name string, value any) *Builder {
	v, ok := present(value)
	if !ok {
		b.fail(&dnsimple.ValidationError{Field: name, Reason: dnsimple.ErrRequiredArgument})

		return b
	}

	b.fields[name] = v

	return b
}

// Optional adds a field when it is present and, for strings, not blank.
func (b *Builder) Optional(name string, value any) *Builder {
	v, ok := present(value)
	if !ok {
		return b
	}

	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return b
	}

	b.fields[name] = v

	return b
}

// Present adds a field whenever it is present. Blank strings are sent.
func (b *Builder) Present(name string, value any) *Builder {
	if v, ok := present(value); ok {
		b.fields[name] = v
	}

	return b
}

// RequiredIf adds a field that becomes required when cond holds and is
// optional otherwise.
func (b *Builder) RequiredIf(cond bool, name string, value any, detail string) *Builder {
	if !cond {
		return b.Optional(name, value)
	}

	if _, ok := present(value); !ok {
		b.fail(&dnsimple.ValidationError{Field: name, Reason: dnsimple.ErrConditionalArgument, Detail: detail})

		return b
	}

	return b.Optional(name, value)
}

// Set adds a field unconditionally.
func (b *Builder) Set(name string, value any) *Builder {
	b.fields[name] = value

	return b
}

// Fail records a validation failure detected by the caller.
func (b *Builder) Fail(err error) *Builder {
	b.fail(err)

	return b
}

// Nested returns a builder for the object stored under name.
func (b *Builder) Nested(name string) *Builder {
	if child, ok := b.children[name]; ok {
		return child
	}

	child := &Builder{
		fields:   make(map[string]any),
		children: make(map[string]*Builder),
		root:     b.root,
	}
	b.children[name] = child

	return child
}

// Empty reports whether no field has been added to this builder or any of
// its nested builders.
func (b *Builder) Empty() bool {
	if len(b.fields) > 0 {
		return false
	}

	for _, child := range b.children {
		if !child.Empty() {
			return false
		}
	}

	return true
}

// Build returns the payload tree, or every validation failure recorded
// while building it. Failures can be matched with errors.As against
// *dnsimple.ValidationError.
func (b *Builder) Build() (map[string]any, error) {
	err := b.root.errs.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	out := b.tree()
	if b.wrapper == "" {
		return out, nil
	}

	return map[string]any{b.wrapper: out}, nil
}

func (b *Builder) tree() map[string]any {
	out := make(map[string]any, len(b.fields)+len(b.children))
	for name, value := range b.fields {
		out[name] = value
	}

	for name, child := range b.children {
		out[name] = child.tree()
	}

	return out
}

func (b *Builder) fail(err error) {
	b.root.errs = multierror.Append(b.root.errs, err)
}

// RequireArgument validates a positional reference such as a domain name,
// an email or a TLD. The zero value stands for the absent reference.
func RequireArgument(name, value string) error {
	if value == "" {
		return &dnsimple.ValidationError{Field: name, Reason: dnsimple.ErrRequiredArgument}
	}

	return nil
}

// present dereferences pointers and reports whether value holds anything.
func present(value any) (any, bool) {
	if value == nil {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Pointer {
		return value, true
	}

	if rv.IsNil() {
		return nil, false
	}

	return rv.Elem().Interface(), true
}
