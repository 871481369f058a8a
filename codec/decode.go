// Package codec reads and writes tree values as JSON and YAML text and turns
// JSON Patch documents into jpatch.Patch values.
//
// Object members keep the order they have in the source text, and numbers
// are kept as encoding/json.Number so no precision is lost between decoding
// and encoding.
package codec

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/brunoga/jpatch/tree"
)

var (
	// ErrTrailingData is returned when the input holds more than one JSON value.
	ErrTrailingData = errors.New("trailing data after JSON value")
	// ErrInvalidJSON is returned for text that is not valid JSON, such as a
	// missing ',' or ':' separator.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// Decode reads a single JSON value from r.
func Decode(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes is like Decode but reads from data.
func DecodeBytes(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = ErrTrailingData
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	// The token stream does not check separators.
	if !json.Valid(data) {
		return nil, fmt.Errorf("decode: %w", ErrInvalidJSON)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected %q", rune(t))
	case json.Number:
		return stdjson.Number(string(t)), nil
	case float64:
		return t, nil
	case string, bool, nil:
		return t, nil
	}
	return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
}

func decodeObject(dec *json.Decoder) (*tree.Object, error) {
	obj := tree.NewObject(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		obj.Set(key, v)
	}
	if err := closing(dec, '}'); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) (*tree.Array, error) {
	arr := tree.NewArray()
	for i := 0; dec.More(); i++ {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		arr.Append(v)
	}
	if err := closing(dec, ']'); err != nil {
		return nil, err
	}
	return arr, nil
}

func closing(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", rune(want), tok)
	}
	return nil
}
