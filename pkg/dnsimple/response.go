package dnsimple

import (
	"encoding/json"
	"net/http"
	"sort"
)

// ResponseKind discriminates the three shapes a decoded response can take.
type ResponseKind int

// Response kinds.
const (
	ResponseObject ResponseKind = iota
	ResponseList
	ResponseError
)

// String returns the kind name.
func (k ResponseKind) String() string {
	switch k {
	case ResponseObject:
		return "object"
	case ResponseList:
		return "list"
	case ResponseError:
		return "error"
	default:
		return "unknown"
	}
}

// Response is the generic decoded result of any API call. A remote 4xx/5xx
// is returned as a Response of kind ResponseError, not as an error; callers
// branch on Kind (or call Err) before reading fields.
//
// A Response is immutable and safe for concurrent reads.
type Response struct {
	kind   ResponseKind
	status int
	body   Value
	raw    string
}

// Kind reports the response shape.
func (r *Response) Kind() ResponseKind { return r.kind }

// StatusCode returns the HTTP status the response was decoded from.
func (r *Response) StatusCode() int { return r.status }

// IsError reports whether the remote service rejected the call.
func (r *Response) IsError() bool { return r.kind == ResponseError }

// Object returns the single object of a ResponseObject.
func (r *Response) Object() (*Object, error) {
	if r.kind != ResponseObject {
		return nil, &ShapeError{Want: ResponseObject.String(), Got: r.kind.String()}
	}

	return r.body.Object()
}

// List returns the objects of a ResponseList in source order.
func (r *Response) List() ([]*Object, error) {
	if r.kind != ResponseList {
		return nil, &ShapeError{Want: ResponseList.String(), Got: r.kind.String()}
	}

	items, err := r.body.List()
	if err != nil {
		return nil, err
	}

	objects := make([]*Object, 0, len(items))
	for _, item := range items {
		obj, err := item.Object()
		if err != nil {
			return nil, err
		}

		objects = append(objects, obj)
	}

	return objects, nil
}

// Body returns the decoded body regardless of kind. For an error response
// whose body was empty or not JSON the value is null; see RawBody.
func (r *Response) Body() Value { return r.body }

// RawBody returns the undecoded body text of an error response. It is
// empty for success responses.
func (r *Response) RawBody() string { return r.raw }

// ErrorBody returns the object carried by a ResponseError. It is nil when
// the error body was not a JSON object.
func (r *Response) ErrorBody() (*Object, error) {
	if r.kind != ResponseError {
		return nil, &ShapeError{Want: ResponseError.String(), Got: r.kind.String()}
	}

	if r.body.Kind() != KindObject {
		return nil, nil
	}

	return r.body.Object()
}

// Message returns the "message" field of an error response, if any.
func (r *Response) Message() string {
	obj, err := r.ErrorBody()
	if err != nil || obj == nil {
		return ""
	}

	msg, err := obj.GetString("message")
	if err != nil {
		return ""
	}

	return msg
}

// FieldErrors returns per-field validation messages of an error response.
// DNSimple reports them as {"errors": {"field": ["msg", ...]}}.
func (r *Response) FieldErrors() map[string][]string {
	obj, err := r.ErrorBody()
	if err != nil || obj == nil {
		return nil
	}

	errs, err := obj.GetObject("errors")
	if err != nil {
		return nil
	}

	out := make(map[string][]string, errs.Len())

	for _, field := range errs.Keys() {
		value, _ := errs.Get(field)

		switch value.Kind() {
		case KindList:
			items, _ := value.List()
			for _, item := range items {
				out[field] = append(out[field], item.Text())
			}
		case KindNull:
		default:
			out[field] = append(out[field], value.Text())
		}
	}

	return out
}

// Err returns nil for success responses and an *APIError describing the
// remote failure otherwise.
func (r *Response) Err() error {
	if r == nil || r.kind != ResponseError {
		return nil
	}

	msg := r.Message()
	if msg == "" && r.body.IsNull() {
		msg = r.raw
	}

	return &APIError{
		StatusCode:  r.status,
		Message:     msg,
		FieldErrors: r.FieldErrors(),
	}
}

// MarshalJSON renders the decoded body.
func (r *Response) MarshalJSON() ([]byte, error) {
	if r.kind == ResponseError && r.body.IsNull() {
		return json.Marshal(map[string]any{
			"status":  r.status,
			"message": http.StatusText(r.status),
			"body":    r.raw,
		})
	}

	return r.body.MarshalJSON()
}

// MarshalYAML renders the decoded body.
func (r *Response) MarshalYAML() (interface{}, error) {
	return r.body.MarshalYAML()
}

// Columns returns the union of top-level keys of a list response, in order
// of first appearance. Useful for tabular rendering.
func (r *Response) Columns() []string {
	objects, err := r.List()
	if err != nil {
		obj, objErr := r.Object()
		if objErr != nil {
			return nil
		}

		return obj.Keys()
	}

	return ColumnsOf(objects)
}

// ColumnsOf returns the union of the keys of objects, in order of first
// appearance.
func ColumnsOf(objects []*Object) []string {
	seen := make(map[string]struct{})

	var columns []string

	for _, obj := range objects {
		for _, key := range obj.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			columns = append(columns, key)
		}
	}

	return columns
}

// SortedFieldNames returns the keys of FieldErrors in lexical order.
func SortedFieldNames(fieldErrors map[string][]string) []string {
	names := make([]string, 0, len(fieldErrors))
	for name := range fieldErrors {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
