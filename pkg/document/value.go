// Package document provides the generic document model of a parsed workflow file.
// A document is a tree of values whose kinds are null, boolean, number, string,
// sequence and mapping. Mappings keep the declaration order of their keys.
// Accessors are nil-safe and report absence instead of failing, so callers can
// walk documents of any shape without type assertions.
package document

import (
	"strings"
)

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a node of a document.
// A nil *Value means the value is absent and behaves like null.
type Value struct {
	kind Kind
	b    bool
	// text holds the string of a string value and the literal of a number.
	text string
	seq  []*Value
	m    *Mapping
}

func Null() *Value {
	return &Value{kind: KindNull}
}

func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number returns a number value. literal must be the decimal representation of the number.
func Number(literal string) *Value {
	return &Value{kind: KindNumber, text: literal}
}

func String(s string) *Value {
	return &Value{kind: KindString, text: s}
}

func Sequence(values ...*Value) *Value {
	return &Value{kind: KindSequence, seq: values}
}

func FromMapping(m *Mapping) *Value {
	if m == nil {
		m = NewMapping()
	}
	return &Value{kind: KindMapping, m: m}
}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is absent or null.
func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.b, true
}

func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.text, true
}

func (v *Value) AsSequence() ([]*Value, bool) {
	if v.Kind() != KindSequence {
		return nil, false
	}
	return v.seq, true
}

func (v *Value) AsMapping() (*Mapping, bool) {
	if v.Kind() != KindMapping {
		return nil, false
	}
	return v.m, true
}

// Get returns the value of key if v is a mapping containing key.
// Otherwise it returns nil.
func (v *Value) Get(key string) *Value {
	m, ok := v.AsMapping()
	if !ok {
		return nil
	}
	return m.Get(key)
}

// IsTrue reports whether v is exactly the boolean true.
func (v *Value) IsTrue() bool {
	b, ok := v.AsBool()
	return ok && b
}

// String returns the string form of the value.
// Strings are returned as is, so the string form of a scalar can be used as a label.
func (v *Value) String() string {
	sb := &strings.Builder{}
	v.write(sb, false)
	return sb.String()
}

func (v *Value) write(sb *strings.Builder, nested bool) {
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNumber:
		sb.WriteString(v.text)
	case KindString:
		if nested && v.text == "" {
			sb.WriteString(`""`)
			return
		}
		sb.WriteString(v.text)
	case KindSequence:
		sb.WriteString("[")
		for i, e := range v.seq {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.write(sb, true)
		}
		sb.WriteString("]")
	case KindMapping:
		sb.WriteString("{")
		for i, key := range v.m.Keys() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(key)
			sb.WriteString(": ")
			v.m.Get(key).write(sb, true)
		}
		sb.WriteString("}")
	}
}
