package domain

import (
	"encoding/json"
	"fmt"
)

// ProfileDocument is the deserialized upstream profile response: a tree
// of scalar fields, nested object fields and nested list fields.
// Constructed fresh per scan and discarded at scan end; never cached
// across scans or shared between concurrent scans.
type ProfileDocument struct {
	raw    []byte
	fields map[string]any
}

// ParseProfileDocument parses body into a ProfileDocument, keeping the
// original bytes verbatim for the catch-all column. A body that is not a
// JSON object fails with ErrParse.
func ParseProfileDocument(body []byte) (*ProfileDocument, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	raw := make([]byte, len(body))
	copy(raw, body)

	return &ProfileDocument{raw: raw, fields: fields}, nil
}

// Raw returns the original response bytes, untouched. Unknown upstream
// fields survive here even when the fixed column set lags the schema.
func (d *ProfileDocument) Raw() json.RawMessage {
	return json.RawMessage(d.raw)
}

// String returns the named scalar string field, or nil if absent or not
// a string.
func (d *ProfileDocument) String(name string) *string {
	if v, ok := d.fields[name].(string); ok {
		return &v
	}
	return nil
}

// Bool returns the named boolean field, or nil if absent.
func (d *ProfileDocument) Bool(name string) *bool {
	if v, ok := d.fields[name].(bool); ok {
		return &v
	}
	return nil
}

// Int64 returns the named integer field, or nil if absent.
func (d *ProfileDocument) Int64(name string) *int64 {
	// encoding/json decodes all numbers into float64.
	if v, ok := d.fields[name].(float64); ok {
		i := int64(v)
		return &i
	}
	return nil
}

// JSON reserializes the named nested object or list field, or nil if
// absent.
func (d *ProfileDocument) JSON(name string) json.RawMessage {
	v, ok := d.fields[name]
	if !ok {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return json.RawMessage(data)
}
