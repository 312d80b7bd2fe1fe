package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the value as JSON.
// Mappings are encoded as objects whose keys keep the document order.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := v.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		// .inf and .nan are valid YAML but not valid JSON numbers
		if json.Valid([]byte(v.text)) {
			buf.WriteString(v.text)
			return nil
		}
		return writeJSONString(buf, v.text)
	case KindString:
		return writeJSONString(buf, v.text)
	case KindSequence:
		buf.WriteByte('[')
		for i, e := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, key := range v.m.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.m.Get(key).writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode a string as JSON: %w", err)
	}
	buf.Write(b)
	return nil
}
