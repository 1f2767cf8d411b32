package sanitize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind discriminates the document-tree union. Keeping the tree typed makes
// the pruning walk exhaustive instead of relying on dynamic truthiness.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// Value is one node of a nested document tree: a scalar, a list, or an
// order-preserving map.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	l    []Value
	m    *Map
}

func Null() Value               { return Value{kind: KindNull} }
func Bool(b bool) Value         { return Value{kind: KindBool, b: b} }
func Number(n float64) Value    { return Value{kind: KindNumber, n: n} }
func String(s string) Value     { return Value{kind: KindString, s: s} }
func List(items ...Value) Value { return Value{kind: KindList, l: items} }
func MapOf(m *Map) Value        { return Value{kind: KindMap, m: m} }

func (v Value) Kind() Kind      { return v.kind }
func (v Value) BoolVal() bool   { return v.b }
func (v Value) NumberVal() float64 { return v.n }
func (v Value) StringVal() string  { return v.s }
func (v Value) ListVal() []Value   { return v.l }
func (v Value) MapVal() *Map       { return v.m }

// Map preserves insertion order of its keys, so sanitizing never reorders
// surviving siblings.
type Map struct {
	keys []string
	vals map[string]Value
}

func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Set inserts or replaces a key. Replacing keeps the original position.
func (m *Map) Set(key string, v Value) *Map {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func (m *Map) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// FromJSON parses a JSON document into a Value, preserving object key
// order. Numbers keep full float64 precision.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return Null(), err
	}

	if _, err := dec.Token(); err != io.EOF {
		return Null(), fmt.Errorf("trailing data after JSON document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null(), err
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Null(), err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Null(), fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Null(), err
				}
				m.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return Null(), err
			}
			return MapOf(m), nil
		case '[':
			var items []Value
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return Null(), err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return Null(), err
			}
			return List(items...), nil
		}
	}

	return Null(), fmt.Errorf("unexpected JSON token %v", tok)
}

// MarshalJSON writes the tree back out with map keys in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(strconv.FormatFloat(v.n, 'f', -1, 64))
	case KindString:
		encoded, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.l {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, key := range v.m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encoded, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(encoded)
			buf.WriteByte(':')
			if err := writeJSON(buf, v.m.vals[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
