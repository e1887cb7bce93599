package a2a

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/BerylCAtieno/a2ui-agent/internal/a2ui"
)

// GreetingTitle is shown when the user sent neither text nor an event.
const GreetingTitle = "Hello A2UI (v0.8 spec-compliant)"

// Duplicate member names are accepted; the last one wins.
var lenient = jsontext.AllowDuplicateNames(true)

// Intent is what the user asked for: the first text part and the first
// A2UI data part of their message. Either may be absent.
type Intent struct {
	Text  *string
	Event any
}

// Extract scans parts once, keeping the first text part and the first data
// part with the A2UI MIME type. Later parts of the same kind are ignored.
func Extract(parts []Part) Intent {
	var in Intent
	var haveText, haveEvent bool
	for _, p := range parts {
		switch {
		case p.Kind == PartKindText && !haveText:
			in.Text = p.Text
			haveText = true
		case p.Kind == PartKindData && p.MimeType == a2ui.MIMEType && !haveEvent:
			in.Event = p.Data
			haveEvent = true
		}
		if haveText && haveEvent {
			break
		}
	}
	return in
}

// Title picks the heading for the response surface. Empty text and empty
// events (null, false, 0, "", [], {}) count as absent.
func (in Intent) Title() string {
	if in.Text != nil && *in.Text != "" {
		return "You said: " + *in.Text
	}
	if ev, ok := canonicalJSON(in.Event); ok && !emptyJSON(ev) {
		return "Got A2UI event: " + ev
	}
	return GreetingTitle
}

// canonicalJSON renders v in RFC 8785 canonical form. Raw values are
// decoded first so repeated member names collapse to the last one.
// Numbers become IEEE 754 doubles, so integers beyond 2^53 lose precision.
func canonicalJSON(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if raw, ok := v.(jsontext.Value); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded, lenient); err != nil {
			return "", false
		}
		v = decoded
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	val := jsontext.Value(b)
	if err := val.Canonicalize(); err != nil {
		return "", false
	}
	return string(val), true
}

func emptyJSON(canonical string) bool {
	switch canonical {
	case "null", "false", "0", `""`, "[]", "{}":
		return true
	}
	return false
}

// DecodeParts pulls params.message.parts out of raw request params.
// Missing or wrongly shaped levels yield no parts, entries that are not
// objects are skipped, and a non-string text is treated as absent.
func DecodeParts(params jsontext.Value) []Part {
	p, _ := members(params)
	msg, _ := members(p["message"])

	raw := msg["parts"]
	if raw.Kind() != '[' {
		return nil
	}
	var items []jsontext.Value
	if err := json.Unmarshal(raw, &items, lenient); err != nil {
		return nil
	}

	parts := make([]Part, 0, len(items))
	for _, item := range items {
		m, ok := members(item)
		if !ok {
			continue
		}
		var part Part
		part.Kind, _ = stringMember(m, "kind")
		part.MimeType, _ = stringMember(m, "mimeType")
		if s, ok := stringMember(m, "text"); ok {
			part.Text = &s
		}
		if d, ok := m["data"]; ok {
			part.Data = d
		}
		parts = append(parts, part)
	}
	return parts
}

func members(v jsontext.Value) (map[string]jsontext.Value, bool) {
	if v.Kind() != '{' {
		return nil, false
	}
	var m map[string]jsontext.Value
	if err := json.Unmarshal(v, &m, lenient); err != nil {
		return nil, false
	}
	return m, true
}

func stringMember(m map[string]jsontext.Value, name string) (string, bool) {
	v, ok := m[name]
	if !ok || v.Kind() != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}
