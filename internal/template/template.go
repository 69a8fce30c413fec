// Package template resolves resource path templates such as
// "domains/{domain}/records/{id}" and describes a request before it is sent.
package template

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/dnsimple-client/internal/constants"
	"github.com/fivetwenty-io/dnsimple-client/pkg/dnsimple"
)

// Segment is one named path substitution.
type Segment struct {
	Name  string
	Value string
}

// Segments is the ordered set of substitutions for one request.
type Segments []Segment

// Str appends a string segment.
func (s Segments) Str(name, value string) Segments {
	return append(s, Segment{Name: name, Value: value})
}

// Int appends an integer segment.
func (s Segments) Int(name string, value int) Segments {
	return append(s, Segment{Name: name, Value: strconv.Itoa(value)})
}

func (s Segments) lookup(name string) (string, bool) {
	for _, seg := range s {
		if seg.Name == name {
			return seg.Value, true
		}
	}

	return "", false
}

// Resolve replaces every {name} in tmpl with the path-escaped value of the
// matching segment.
func Resolve(tmpl string, segments Segments) (string, error) {
	var out strings.Builder

	out.Grow(len(tmpl))

	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)

			break
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			return "", &dnsimple.TemplateError{Template: tmpl, Reason: dnsimple.ErrMalformedTemplate}
		}

		name := rest[open+1 : open+closing]
		if name == "" || strings.ContainsRune(name, '{') {
			return "", &dnsimple.TemplateError{Template: tmpl, Segment: name, Reason: dnsimple.ErrMalformedTemplate}
		}

		value, ok := segments.lookup(name)
		if !ok {
			return "", &dnsimple.TemplateError{Template: tmpl, Segment: name, Reason: dnsimple.ErrUnfilledSegment}
		}

		out.WriteString(rest[:open])
		out.WriteString(url.PathEscape(value))

		rest = rest[open+closing+1:]
	}

	return out.String(), nil
}

// Spec is one fully described request: verb, path template, substitutions
// and optional body.
type Spec struct {
	Method   string
	Path     string
	Segments Segments
	Body     map[string]any
}

// Get describes a GET request.
func Get(path string, segments Segments) *Spec {
	return &Spec{Method: http.MethodGet, Path: path, Segments: segments}
}

// Post describes a POST request.
func Post(path string, segments Segments, body map[string]any) *Spec {
	return &Spec{Method: http.MethodPost, Path: path, Segments: segments, Body: body}
}

// Put describes a PUT request.
func Put(path string, segments Segments, body map[string]any) *Spec {
	return &Spec{Method: http.MethodPut, Path: path, Segments: segments, Body: body}
}

// Delete describes a DELETE request.
func Delete(path string, segments Segments) *Spec {
	return &Spec{Method: http.MethodDelete, Path: path, Segments: segments}
}

// Resolve returns the concrete resource path.
func (s *Spec) Resolve() (string, error) {
	return Resolve(s.Path, s.Segments)
}

// HasBody reports whether a JSON body is sent with the request.
func (s *Spec) HasBody() bool {
	if s.Body == nil {
		return false
	}

	switch s.Method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Headers returns the fixed headers for the request.
func (s *Spec) Headers() map[string]string {
	headers := map[string]string{"Accept": constants.ContentTypeJSON}
	if s.HasBody() {
		headers["Content-Type"] = constants.ContentTypeJSON
	}

	return headers
}
