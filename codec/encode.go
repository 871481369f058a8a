package codec

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/brunoga/jpatch/tree"
)

// EncodeOption configures Encode and EncodeBytes.
type EncodeOption interface {
	apply(*encoder)
}

type encodeOptionFunc func(*encoder)

func (f encodeOptionFunc) apply(e *encoder) {
	f(e)
}

// Indent makes the output span several lines, each element starting on a
// new line with prefix followed by one copy of indent per nesting level.
func Indent(prefix, indent string) EncodeOption {
	return encodeOptionFunc(func(e *encoder) {
		e.prefix = prefix
		e.indent = indent
		e.pretty = true
	})
}

type encoder struct {
	buf    bytes.Buffer
	pretty bool
	prefix string
	indent string
}

// Encode writes v to w as JSON followed by a newline. Object members are
// written in their tree order.
func Encode(w io.Writer, v any, opts ...EncodeOption) error {
	data, err := EncodeBytes(v, opts...)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EncodeBytes returns the JSON text of v.
func EncodeBytes(v any, opts ...EncodeOption) ([]byte, error) {
	e := &encoder{}
	for _, opt := range opts {
		opt.apply(e)
	}
	if err := e.value(v, 0); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return e.buf.Bytes(), nil
}

func (e *encoder) value(v any, depth int) error {
	switch v := v.(type) {
	case nil:
		e.buf.WriteString("null")
	case bool:
		e.buf.WriteString(strconv.FormatBool(v))
	case string:
		return e.marshal(v)
	case stdjson.Number:
		if v == "" {
			v = "0"
		}
		return e.marshal(v)
	case int:
		e.buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int8:
		e.buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int16:
		e.buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int32:
		e.buf.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		e.buf.WriteString(strconv.FormatInt(v, 10))
	case uint:
		e.buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint8:
		e.buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint16:
		e.buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint32:
		e.buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case uint64:
		e.buf.WriteString(strconv.FormatUint(v, 10))
	case float32, float64:
		return e.marshal(v)
	case *tree.Object:
		if v == nil {
			e.buf.WriteString("null")
			return nil
		}
		return e.object(v, depth)
	case *tree.Array:
		if v == nil {
			e.buf.WriteString("null")
			return nil
		}
		return e.array(v, depth)
	default:
		return fmt.Errorf("unsupported type %T", v)
	}
	return nil
}

// marshal writes a scalar using go-json's escaping and number formatting.
func (e *encoder) marshal(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	e.buf.Write(data)
	return nil
}

func (e *encoder) object(obj *tree.Object, depth int) error {
	if obj.Len() == 0 {
		e.buf.WriteString("{}")
		return nil
	}
	e.buf.WriteByte('{')
	var err error
	i := 0
	obj.Range(func(k string, v any) bool {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		i++
		e.newline(depth + 1)
		if err = e.marshal(k); err != nil {
			return false
		}
		e.buf.WriteByte(':')
		if e.pretty {
			e.buf.WriteByte(' ')
		}
		if err = e.value(v, depth+1); err != nil {
			err = fmt.Errorf("member %q: %w", k, err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	e.newline(depth)
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) array(arr *tree.Array, depth int) error {
	if arr.Len() == 0 {
		e.buf.WriteString("[]")
		return nil
	}
	e.buf.WriteByte('[')
	for i, v := range arr.Items() {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.newline(depth + 1)
		if err := e.value(v, depth+1); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}
	e.newline(depth)
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) newline(depth int) {
	if !e.pretty {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(e.prefix)
	for i := 0; i < depth; i++ {
		e.buf.WriteString(e.indent)
	}
}
