package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

var ErrMultipleDocuments = errors.New("workflow file must contain a single document")

// Parse parses a YAML document.
// An empty document is returned as an empty mapping.
// A stream containing more than one document is an error.
// Duplicated mapping keys are allowed; the last value wins and the key keeps its first position.
func Parse(content []byte) (*Value, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content), yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey())
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return FromMapping(nil), nil
		}
		return nil, fmt.Errorf("parse a document as YAML: %w", err)
	}
	var extra any
	err := decoder.Decode(&extra)
	if err == nil {
		return nil, ErrMultipleDocuments
	}
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse a document as YAML: %w", err)
	}
	if raw == nil {
		return FromMapping(nil), nil
	}
	return FromAny(raw), nil
}

// FromAny converts a value decoded by the YAML decoder to a Value.
// Mappings must be yaml.MapSlice to keep their key order.
func FromAny(raw any) *Value { //nolint:cyclop
	switch v := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case string:
		return String(v)
	case int:
		return Number(strconv.Itoa(v))
	case int64:
		return Number(strconv.FormatInt(v, 10))
	case uint64:
		return Number(strconv.FormatUint(v, 10))
	case float64:
		return Number(formatFloat(v))
	case []byte:
		return String(formatBytes(v))
	case time.Time:
		return String(v.Format(time.RFC3339))
	case []any:
		seq := make([]*Value, len(v))
		for i, e := range v {
			seq[i] = FromAny(e)
		}
		return Sequence(seq...)
	case yaml.MapSlice:
		m := NewMapping()
		for _, item := range v {
			m.Set(FromAny(item.Key).String(), FromAny(item.Value))
		}
		return FromMapping(m)
	default:
		return String(fmt.Sprint(v))
	}
}

// formatFloat formats a float like 1.0, 0.5, 1e+16, inf.
// Integral values keep a trailing .0 so that they are distinguishable from integers.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	if exp, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:]); err == nil && (exp < -4 || exp >= 16) {
		return s
	}
	s = strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatBytes formats binary data like b'hello'.
func formatBytes(b []byte) string {
	quote := byte('\'')
	if bytes.IndexByte(b, '\'') != -1 && bytes.IndexByte(b, '"') == -1 {
		quote = '"'
	}
	sb := &strings.Builder{}
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for _, c := range b {
		switch {
		case c == '\\' || c == quote:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(sb, `\x%02x`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}
