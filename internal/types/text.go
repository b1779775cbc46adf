package types

import (
	"bytes"
	"encoding/json"
)

// Text is a recipe field as sent by a client. Any JSON value is accepted:
// strings are stored as-is, anything else keeps its compact JSON text, so
// a cost of 50 is stored as "50". null leaves the field unset.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return err
	}
	*t = Text(buf.String())
	return nil
}

// String returns the field as stored
func (t Text) String() string { return string(t) }
