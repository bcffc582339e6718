package trace

import (
	"encoding/json"
	"fmt"
)

const prettyIndent = "    "

// Marshal encodes the current document. Pretty output is indented by four
// spaces; compact output has no insignificant whitespace.
//
// Encoding fails only if a recorded value is NaN or infinite.
func (r *Recorder) Marshal(pretty bool) ([]byte, error) {
	return r.doc.Marshal(pretty)
}

// Serialize is Marshal returning a string.
func (r *Recorder) Serialize(pretty bool) (string, error) {
	b, err := r.Marshal(pretty)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Marshal encodes d as JSON.
func (d Document) Marshal(pretty bool) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(d, "", prettyIndent)
	} else {
		b, err = json.Marshal(d)
	}
	if err != nil {
		return nil, fmt.Errorf("encode trace: %w", err)
	}
	return b, nil
}

// Parse decodes a serialized document.
func Parse(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decode trace: %w", err)
	}

	if d.Objects == nil {
		d.Objects = make([]ObjectDecl, 0)
	}
	if d.Frames == nil {
		d.Frames = make([]Frame, 0)
	}
	for i, f := range d.Frames {
		if f == nil {
			d.Frames[i] = make(Frame)
		}
	}

	return d, nil
}
