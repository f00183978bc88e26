package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DependencyMap maps a package name to its version specifier. It carries no
// order; canonical order is imposed by core.SortDependencies.
type DependencyMap map[string]string

// Names returns the map keys in unspecified order.
func (m DependencyMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

type DependencyEntry struct {
	Name    string
	Version string
}

// SortedDependencies is an ordered dependency list that marshals to a JSON
// object whose keys keep slice order.
type SortedDependencies []DependencyEntry

// Map returns the entries as an unordered DependencyMap.
func (s SortedDependencies) Map() DependencyMap {
	out := make(DependencyMap, len(s))
	for _, entry := range s {
		out[entry.Name] = entry.Version
	}
	return out
}

func (s SortedDependencies) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, entry.Name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(&buf, entry.Version); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON keeps document order. Non-string values are rendered with
// their JSON text, with quotes stripped from strings.
func (s *SortedDependencies) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dependency map must be a JSON object")
	}
	out := SortedDependencies{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		out = append(out, DependencyEntry{Name: key, Version: StringifyJSONValue(raw)})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// StringifyJSONValue renders a raw JSON value the way JavaScript's String()
// renders the parsed value, so tampered manifests fingerprint the same in
// the generated project's validator.
func StringifyJSONValue(raw json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return jsString(value, false)
}

func jsString(value any, inArray bool) string {
	switch v := value.(type) {
	case nil:
		// Array join renders null elements as empty strings.
		if inArray {
			return ""
		}
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		// Out of range values come back as ±Inf, like Number() does.
		f, _ := strconv.ParseFloat(v.String(), 64)
		return jsNumber(f)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = jsString(item, true)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return fmt.Sprint(v)
	}
}

// jsNumber formats f with JavaScript's Number#toString rules: shortest
// round-trip digits, exponent form outside [1e-6, 1e21).
func jsNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	text := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(text, "e")
	digits := strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + exponent[:1] + digits
}

func writeJSONString(buf *bytes.Buffer, value string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
