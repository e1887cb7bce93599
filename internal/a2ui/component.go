package a2ui

import (
	"github.com/go-json-experiment/json"
)

// Component is one node kind from the standard catalog. The set is closed:
// Column, Row, Text and Button are the only implementations.
type Component interface {
	// Kind is the catalog name the node is wrapped in on the wire.
	Kind() string
	// ChildIDs lists the component ids this node references, in order.
	ChildIDs() []string

	isComponent()
}

// ComponentInstance is one entry of a surface's adjacency list.
type ComponentInstance struct {
	ID        string    `json:"id"`
	Component Component `json:"component"`
}

// Children references child components by id.
type Children struct {
	ExplicitList []string `json:"explicitList"`
}

// BoundValue is either a literal or a path into the surface's data model.
type BoundValue struct {
	LiteralString *string `json:"literalString,omitzero"`
	Path          string  `json:"path,omitzero"`
}

// Literal binds a fixed string.
func Literal(s string) BoundValue {
	return BoundValue{LiteralString: &s}
}

// Bound binds a data-model path.
func Bound(path string) BoundValue {
	return BoundValue{Path: path}
}

// Action is the event a Button emits when activated.
type Action struct {
	Name string `json:"name"`
}

type Column struct {
	Children     Children `json:"children"`
	Distribution string   `json:"distribution,omitzero"`
	Alignment    string   `json:"alignment,omitzero"`
}

type Row struct {
	Children     Children `json:"children"`
	Distribution string   `json:"distribution,omitzero"`
	Alignment    string   `json:"alignment,omitzero"`
}

type Text struct {
	UsageHint string     `json:"usageHint,omitzero"`
	Text      BoundValue `json:"text"`
}

type Button struct {
	Child   string `json:"child"`
	Primary bool   `json:"primary,omitzero"`
	Action  Action `json:"action"`
}

func (Column) Kind() string { return "Column" }
func (Row) Kind() string { return "Row" }
func (Text) Kind() string { return "Text" }
func (Button) Kind() string { return "Button" }

func (c Column) ChildIDs() []string { return c.Children.ExplicitList }
func (r Row) ChildIDs() []string { return r.Children.ExplicitList }
func (Text) ChildIDs() []string { return nil }
func (b Button) ChildIDs() []string { return []string{b.Child} }

func (Column) isComponent() {}
func (Row) isComponent() {}
func (Text) isComponent() {}
func (Button) isComponent() {}

// MarshalJSON wraps the node as {"Column": {...}}.
func (c Column) MarshalJSON() ([]byte, error) {
	type column Column
	return json.Marshal(map[string]column{c.Kind(): column(c)})
}

func (r Row) MarshalJSON() ([]byte, error) {
	type row Row
	return json.Marshal(map[string]row{r.Kind(): row(r)})
}

func (t Text) MarshalJSON() ([]byte, error) {
	type text Text
	return json.Marshal(map[string]text{t.Kind(): text(t)})
}

func (b Button) MarshalJSON() ([]byte, error) {
	type button Button
	return json.Marshal(map[string]button{b.Kind(): button(b)})
}
