package a2ui

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMessage     = errors.New("a2ui: unknown message type")
	ErrOutOfOrder         = errors.New("a2ui: message out of order")
	ErrInvalidComponent   = errors.New("a2ui: invalid component")
	ErrDuplicateComponent = errors.New("a2ui: duplicate component id")
	ErrUnknownComponent   = errors.New("a2ui: unknown component id")
	ErrCycle              = errors.New("a2ui: component cycle")
	ErrInvalidDataModel   = errors.New("a2ui: invalid data model")
)

type surfaceState struct {
	components map[string]Component
	modeled    bool
}

// Validate checks that msgs is a sequence a conformant client can render:
// per surface, the component tree comes first, then the data model, then
// the render signal; every referenced component is declared; the tree is
// acyclic; data-model contents are keyed maps.
func Validate(msgs []Message) error {
	surfaces := make(map[string]*surfaceState)

	for i, msg := range msgs {
		if msg == nil {
			return fmt.Errorf("%w: message %d is nil", ErrUnknownMessage, i)
		}
		st := surfaces[msg.Surface()]

		switch m := msg.(type) {
		case SurfaceUpdate:
			if st == nil {
				st = &surfaceState{components: make(map[string]Component)}
				surfaces[m.SurfaceID] = st
			}
			seen := make(map[string]struct{}, len(m.Components))
			for _, c := range m.Components {
				if c.ID == "" || c.Component == nil {
					return fmt.Errorf("%w: message %d: component %q", ErrInvalidComponent, i, c.ID)
				}
				if _, dup := seen[c.ID]; dup {
					return fmt.Errorf("%w: message %d: %q", ErrDuplicateComponent, i, c.ID)
				}
				seen[c.ID] = struct{}{}
				st.components[c.ID] = c.Component
			}

		case DataModelUpdate:
			if st == nil {
				return fmt.Errorf("%w: message %d: %s before surfaceUpdate on surface %q", ErrOutOfOrder, i, m.Kind(), m.SurfaceID)
			}
			if err := validateEntries(m.Contents); err != nil {
				return fmt.Errorf("message %d: path %q: %w", i, m.Path, err)
			}
			st.modeled = true

		case BeginRendering:
			if st == nil || !st.modeled {
				return fmt.Errorf("%w: message %d: %s before surfaceUpdate and dataModelUpdate on surface %q", ErrOutOfOrder, i, m.Kind(), m.SurfaceID)
			}
			if _, ok := st.components[m.Root]; !ok {
				return fmt.Errorf("%w: message %d: root %q", ErrUnknownComponent, i, m.Root)
			}
			if err := checkTree(st.components); err != nil {
				return fmt.Errorf("message %d: %w", i, err)
			}

		default:
			return fmt.Errorf("%w: message %d: %T", ErrUnknownMessage, i, msg)
		}
	}
	return nil
}

func validateEntries(entries []DataEntry) error {
	keys := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			return fmt.Errorf("%w: entry without key", ErrInvalidDataModel)
		}
		if _, dup := keys[e.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidDataModel, e.Key)
		}
		keys[e.Key] = struct{}{}
		if n := e.valueCount(); n != 1 {
			return fmt.Errorf("%w: key %q has %d values", ErrInvalidDataModel, e.Key, n)
		}
		if e.ValueMap != nil {
			if err := validateEntries(e.ValueMap); err != nil {
				return fmt.Errorf("key %q: %w", e.Key, err)
			}
		}
	}
	return nil
}

// checkTree verifies every child reference resolves and no component is
// its own ancestor.
func checkTree(components map[string]Component) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(components))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w: through %q", ErrCycle, id)
		case done:
			return nil
		}
		state[id] = visiting
		for _, child := range components[id].ChildIDs() {
			if _, ok := components[child]; !ok {
				return fmt.Errorf("%w: %q referenced by %q", ErrUnknownComponent, child, id)
			}
			if err := visit(child); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for id := range components {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
