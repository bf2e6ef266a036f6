package radarr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Movie is a movie record as served by Radarr.
//
// Only the handful of fields monitorr reads are decoded. Every field is kept
// as the raw JSON the server sent, in the server's key order, so a record
// written back carries the server's values unchanged apart from those set
// through the setters below.
type Movie struct {
	keys   []string
	fields map[string]json.RawMessage
}

// ParseMovie decodes a single movie object.
func ParseMovie(data []byte) (*Movie, error) {
	var m Movie
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &m, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Movie) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode movie: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("decode movie: expected JSON object")
	}

	keys := make([]string, 0, 32)
	fields := make(map[string]json.RawMessage, 32)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode movie: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode movie: unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode movie field %q: %w", key, err)
		}
		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = raw
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode movie: %w", err)
	}

	m.keys = keys
	m.fields = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m Movie) MarshalJSON() ([]byte, error) {
	return m.Body(), nil
}

// Body returns the JSON object for the record, suitable for a PUT body.
func (m *Movie) Body() []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(m.fields[key])
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// ID returns the server-side movie id, or 0 if absent.
func (m *Movie) ID() int64 {
	var id int64
	m.decode("id", &id)
	return id
}

// Title returns the movie title.
func (m *Movie) Title() string {
	var s string
	m.decode("title", &s)
	return s
}

// Path returns the movie's folder on the server's filesystem.
func (m *Movie) Path() string {
	var s string
	m.decode("path", &s)
	return s
}

// LookupDownloaded returns the downloaded flag and whether the record holds
// a boolean for it at all.
func (m *Movie) LookupDownloaded() (downloaded, ok bool) {
	return m.lookupBool("downloaded")
}

// LookupMonitored returns the monitored flag and whether the record holds
// a boolean for it at all.
func (m *Movie) LookupMonitored() (monitored, ok bool) {
	return m.lookupBool("monitored")
}

// SetMonitored replaces the monitored value, leaving every other field as is.
func (m *Movie) SetMonitored(monitored bool) {
	m.set("monitored", json.RawMessage(strconv.FormatBool(monitored)))
}

func (m *Movie) set(name string, raw json.RawMessage) {
	if m.fields == nil {
		m.fields = make(map[string]json.RawMessage)
	}
	if _, ok := m.fields[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.fields[name] = raw
}

// lookupBool reports ok=false for absent, null and non-boolean values.
func (m *Movie) lookupBool(name string) (bool, bool) {
	raw, ok := m.fields[name]
	if !ok {
		return false, false
	}
	var b *bool
	if err := json.Unmarshal(raw, &b); err != nil || b == nil {
		return false, false
	}
	return *b, true
}

// decode leaves v untouched when the field is absent or of another type.
func (m *Movie) decode(name string, v any) {
	raw, ok := m.fields[name]
	if !ok {
		return
	}
	_ = json.Unmarshal(raw, v)
}
