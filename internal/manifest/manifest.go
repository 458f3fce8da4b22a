package manifest

import (
	"bytes"
	"encoding/json" // Token-level decoding keeps the manifest's key order
	"fmt"
	"os"
	"strings"

	"fix-package-file/internal/logger"
)

// DefaultIndent is the number of spaces used per nesting level when the
// manifest is written back.
const DefaultIndent = 4

// Manifest is a JSON object loaded from disk. Top-level keys keep their
// original order and values are kept as raw JSON, so fields this tool does not
// touch are written back with the same content.
type Manifest struct {
	keys   []string
	values map[string]json.RawMessage
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{values: make(map[string]json.RawMessage)}
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	logger.Debug("[DEBUG] Read %d bytes from %s\n", len(data), path)

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes data, which must hold exactly one JSON object.
// A key that appears more than once keeps its first position and its last value.
func Parse(data []byte) (*Manifest, error) {
	if !json.Valid(data) {
		// Re-run through Unmarshal only to get a descriptive syntax error
		var discard any
		err := json.Unmarshal(data, &discard)
		if err == nil {
			err = fmt.Errorf("invalid JSON")
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value is %s", ErrNotObject, describe(tok))
	}

	m := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrParse, key, err)
		}
		m.set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return m, nil
}

// Keys returns the top-level keys in document order.
func (m *Manifest) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Has reports whether key is present, whatever its value.
func (m *Manifest) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Get returns the raw JSON value stored under key.
func (m *Manifest) Get(key string) (json.RawMessage, bool) {
	raw, ok := m.values[key]
	return raw, ok
}

// IsNull reports whether key is absent or explicitly null.
func (m *Manifest) IsNull(key string) bool {
	raw, ok := m.values[key]
	return !ok || string(bytes.TrimSpace(raw)) == "null"
}

// String returns the value under key when it is a JSON string.
func (m *Manifest) String(key string) (string, bool) {
	raw, ok := m.values[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// SetString stores value under key. Existing keys keep their position, new
// keys are appended.
func (m *Manifest) SetString(key, value string) error {
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	m.set(key, raw)
	return nil
}

// Marshal renders the manifest with indent spaces per level and no trailing
// newline.
func (m *Manifest) Marshal(indent int) ([]byte, error) {
	if indent < 0 {
		return nil, fmt.Errorf("negative indent %d", indent)
	}
	if len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	pad := strings.Repeat(" ", indent)
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, key := range m.keys {
		k, err := encode(key)
		if err != nil {
			return nil, err
		}
		buf.WriteString(pad)
		buf.Write(k)
		buf.WriteString(": ")
		if err := json.Indent(&buf, m.values[key], pad, pad); err != nil {
			return nil, fmt.Errorf("formatting %q: %w", key, err)
		}
		if i < len(m.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Save writes the manifest to path, replacing its content. The write is not
// atomic: a failure part way through can leave a truncated file.
func (m *Manifest) Save(path string, indent int) error {
	data, err := m.Marshal(indent)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}

	logger.Debug("[DEBUG] Writing manifest to %s:\n%s\n", path, string(data))

	// Mode only applies when the file is created; existing files keep theirs
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}

func (m *Manifest) set(key string, raw json.RawMessage) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = raw
}

// encode marshals v without HTML escaping so "<", ">" and "&" stay readable.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func describe(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return fmt.Sprintf("%q", string(v))
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
