package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// record builds one JSON line keeping the properties in insertion order,
// which encoding/json cannot do with a map.
type record struct {
	buf bytes.Buffer
	err error
}

// newRecord starts a line belonging to 'table'.
func newRecord(table string) *record {
	r := &record{}
	r.buf.WriteByte('{')
	return r.text("table", table)
}

func (r *record) key(k string) {
	if r.buf.Len() > 1 {
		r.buf.WriteByte(',')
	}
	kb, _ := json.Marshal(k)
	r.buf.Write(kb)
	r.buf.WriteByte(':')
}

// text appends a string property.
func (r *record) text(k, v string) *record {
	if r.err != nil {
		return r
	}
	vb, err := json.Marshal(v)
	if err != nil {
		r.err = fmt.Errorf("property %q: %w", k, err)
		return r
	}
	r.key(k)
	r.buf.Write(vb)
	return r
}

// number appends the decimal text 'v' as a JSON number, with all its digits.
// An empty text is null.
func (r *record) number(k, v string) *record {
	if r.err != nil {
		return r
	}
	if v == "" {
		r.key(k)
		r.buf.WriteString("null")
		return r
	}
	var n json.Number
	if err := json.Unmarshal([]byte(v), &n); err != nil {
		r.err = fmt.Errorf("property %q: invalid number %q", k, v)
		return r
	}
	r.key(k)
	r.buf.WriteString(v)
	return r
}

// line returns the closed object followed by a newline.
func (r *record) line() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append(append(r.buf.Bytes(), '}'), '\n'), nil
}
