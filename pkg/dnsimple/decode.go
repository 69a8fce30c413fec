package dnsimple

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

var errTrailingData = errors.New("trailing data after JSON value")

// Decode classifies and parses a raw HTTP exchange into a Response.
//
// Any status of 400 or above yields a ResponseError whatever the body shape;
// an empty or unparsable error body is kept verbatim in RawBody. Below 400
// the first non-whitespace byte decides: '[' is a list of objects, '{' a
// single object, anything else a *DecodeError. A 204 with no body decodes
// as an empty object.
func Decode(status int, body []byte) (*Response, error) {
	trimmed := bytes.TrimSpace(body)

	if status >= http.StatusBadRequest {
		resp := &Response{kind: ResponseError, status: status, raw: string(body)}

		if len(trimmed) == 0 {
			return resp, nil
		}

		value, err := parseDocument(trimmed)
		if err == nil {
			resp.body = value
		}

		return resp, nil
	}

	if len(trimmed) == 0 {
		if status == http.StatusNoContent {
			return &Response{kind: ResponseObject, status: status, body: ObjectValue(EmptyObject())}, nil
		}

		return nil, &DecodeError{StatusCode: status, Err: fmt.Errorf("%w: empty body", ErrUnexpectedBody)}
	}

	switch trimmed[0] {
	case '[':
		value, err := parseDocument(trimmed)
		if err != nil {
			return nil, &DecodeError{StatusCode: status, Body: string(body), Err: err}
		}

		items, _ := value.List()
		for i, item := range items {
			if item.Kind() != KindObject {
				return nil, &DecodeError{
					StatusCode: status,
					Body:       string(body),
					Err:        fmt.Errorf("list element %d: %w", i, &ShapeError{Want: KindObject.String(), Got: item.Kind().String()}),
				}
			}
		}

		return &Response{kind: ResponseList, status: status, body: value}, nil
	case '{':
		value, err := parseDocument(trimmed)
		if err != nil {
			return nil, &DecodeError{StatusCode: status, Body: string(body), Err: err}
		}

		return &Response{kind: ResponseObject, status: status, body: value}, nil
	default:
		return nil, &DecodeError{
			StatusCode: status,
			Body:       string(body),
			Err:        fmt.Errorf("%w: leading byte %q", ErrUnexpectedBody, trimmed[0]),
		}
	}
}

// ParseValue decodes a single JSON document into a Value, keeping object
// key order and the integer/float distinction.
func ParseValue(data []byte) (Value, error) {
	return parseDocument(bytes.TrimSpace(data))
}

func parseDocument(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return Value{}, errTrailingData
	}

	return value, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("reading token: %w", err)
	}

	switch typed := tok.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return parseObject(dec)
		case '[':
			return parseList(dec)
		default:
			return Value{}, fmt.Errorf("%w: unexpected delimiter %q", ErrUnexpectedBody, typed)
		}
	case string:
		return StringValue(typed), nil
	case json.Number:
		return parseNumber(typed)
	case bool:
		return BoolValue(typed), nil
	case nil:
		return NullValue(), nil
	default:
		return Value{}, fmt.Errorf("%w: unexpected token %v", ErrUnexpectedBody, tok)
	}
}

func parseObject(dec *json.Decoder) (Value, error) {
	builder := NewObjectBuilder()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("reading object key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: object key %v", ErrUnexpectedBody, tok)
		}

		value, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}

		builder.Set(key, value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("closing object: %w", err)
	}

	return ObjectValue(builder.Build()), nil
}

func parseList(dec *json.Decoder) (Value, error) {
	items := []Value{}

	for dec.More() {
		value, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}

		items = append(items, value)
	}

	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("closing list: %w", err)
	}

	return Value{kind: KindList, list: items}, nil
}

func parseNumber(num json.Number) (Value, error) {
	if n, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
		return IntValue(n), nil
	}

	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return Value{}, fmt.Errorf("parsing number %q: %w", num, err)
	}

	return FloatValue(f), nil
}
