// Package a2ui models the A2UI v0.8 server-to-client messages: a component
// tree declaration, data-model updates and the render signal.
package a2ui

import (
	"github.com/go-json-experiment/json"
)

// Message is one A2UI server-to-client message. The set is closed:
// SurfaceUpdate, DataModelUpdate and BeginRendering.
type Message interface {
	// Kind is the wrapper key used on the wire, e.g. "surfaceUpdate".
	Kind() string
	// Surface is the id of the surface the message is scoped to.
	Surface() string

	isMessage()
}

// SurfaceUpdate declares (or replaces) components on a surface.
type SurfaceUpdate struct {
	SurfaceID  string              `json:"surfaceId"`
	Components []ComponentInstance `json:"components"`
}

// DataModelUpdate merges a keyed map fragment into the data model at Path.
type DataModelUpdate struct {
	SurfaceID string      `json:"surfaceId"`
	Path      string      `json:"path,omitzero"`
	Contents  []DataEntry `json:"contents"`
}

// BeginRendering tells the client the surface is ready to be drawn from Root.
type BeginRendering struct {
	SurfaceID string `json:"surfaceId"`
	Root      string `json:"root"`
	CatalogID string `json:"catalogId,omitzero"`
}

// DataEntry is one key of a data-model map. Exactly one value field is set.
type DataEntry struct {
	Key          string      `json:"key"`
	ValueString  *string     `json:"valueString,omitzero"`
	ValueNumber  *float64    `json:"valueNumber,omitzero"`
	ValueBoolean *bool       `json:"valueBoolean,omitzero"`
	ValueMap     []DataEntry `json:"valueMap,omitzero"`
}

func StringEntry(key, v string) DataEntry {
	return DataEntry{Key: key, ValueString: &v}
}

func NumberEntry(key string, v float64) DataEntry {
	return DataEntry{Key: key, ValueNumber: &v}
}

func BoolEntry(key string, v bool) DataEntry {
	return DataEntry{Key: key, ValueBoolean: &v}
}

func MapEntry(key string, entries ...DataEntry) DataEntry {
	if entries == nil {
		entries = []DataEntry{}
	}
	return DataEntry{Key: key, ValueMap: entries}
}

// valueCount reports how many value fields are set.
func (e DataEntry) valueCount() int {
	n := 0
	if e.ValueString != nil {
		n++
	}
	if e.ValueNumber != nil {
		n++
	}
	if e.ValueBoolean != nil {
		n++
	}
	if e.ValueMap != nil {
		n++
	}
	return n
}

func (SurfaceUpdate) Kind() string { return "surfaceUpdate" }
func (DataModelUpdate) Kind() string { return "dataModelUpdate" }
func (BeginRendering) Kind() string { return "beginRendering" }

func (m SurfaceUpdate) Surface() string { return m.SurfaceID }
func (m DataModelUpdate) Surface() string { return m.SurfaceID }
func (m BeginRendering) Surface() string { return m.SurfaceID }

func (SurfaceUpdate) isMessage() {}
func (DataModelUpdate) isMessage() {}
func (BeginRendering) isMessage() {}

// MarshalJSON wraps the message as {"surfaceUpdate": {...}}.
func (m SurfaceUpdate) MarshalJSON() ([]byte, error) {
	type surfaceUpdate SurfaceUpdate
	return json.Marshal(map[string]surfaceUpdate{m.Kind(): surfaceUpdate(m)})
}

func (m DataModelUpdate) MarshalJSON() ([]byte, error) {
	type dataModelUpdate DataModelUpdate
	return json.Marshal(map[string]dataModelUpdate{m.Kind(): dataModelUpdate(m)})
}

func (m BeginRendering) MarshalJSON() ([]byte, error) {
	type beginRendering BeginRendering
	return json.Marshal(map[string]beginRendering{m.Kind(): beginRendering(m)})
}
