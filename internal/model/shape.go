// Package model defines the shape graph consumed by the Loom code generator:
// shapes, members, traits, and the traversal and cloning operations over
// them. The graph may be cyclic; nothing in this package assumes acyclicity.
package model

import "fmt"

// Member is a named, directed edge from a container shape to a target shape.
// Its identity is derived from the parent shape's identity plus its local
// name, so renaming the parent deterministically renames all its members.
type Member struct {
	// Name is the member's local name within its container.
	Name string
	// Target is the identifier of the shape this member points at.
	Target ShapeID
	// Traits holds metadata attached to the member itself.
	Traits TraitSet
}

// Shape is a node in the type graph.
type Shape struct {
	ID   ShapeID
	Kind ShapeKind
	// Members holds the shape's named edges in declaration order. For lists
	// and sets the single element edge is named "member"; for maps the edges
	// are named "key" and "value".
	Members []*Member
	// Traits holds metadata attached to the shape.
	Traits TraitSet
}

// Conventional member names for aggregate shapes.
const (
	ElementMemberName = "member"
	KeyMemberName     = "key"
	ValueMemberName   = "value"
)

// Member returns the member with the given local name, if present.
func (s *Shape) Member(name string) (*Member, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// MemberID returns the shape identifier of the named member.
func (s *Shape) MemberID(m *Member) ShapeID {
	return s.ID.WithMember(m.Name)
}

// Element returns the element member of a list or set shape.
func (s *Shape) Element() (*Member, bool) {
	return s.Member(ElementMemberName)
}

// Model is an insertion-ordered index of shapes keyed by identifier. The
// model is a read-only input to generation; it is populated once by a loader
// and never mutated during a pass.
type Model struct {
	order  []ShapeID
	shapes map[ShapeID]*Shape
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{shapes: make(map[ShapeID]*Shape)}
}

// Add inserts a shape. Adding a second shape under an existing identifier
// replaces the first but keeps its position.
func (m *Model) Add(s *Shape) {
	if _, ok := m.shapes[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.shapes[s.ID] = s
}

// Get returns the shape with the given identifier, if present.
func (m *Model) Get(id ShapeID) (*Shape, bool) {
	s, ok := m.shapes[id]
	return s, ok
}

// Expect returns the shape with the given identifier, or an error naming the
// missing identifier.
func (m *Model) Expect(id ShapeID) (*Shape, error) {
	s, ok := m.shapes[id]
	if !ok {
		return nil, fmt.Errorf("model has no shape %s", id)
	}
	return s, nil
}

// Len returns the number of shapes in the model.
func (m *Model) Len() int {
	return len(m.order)
}

// Shapes returns all shapes in insertion order.
func (m *Model) Shapes() []*Shape {
	out := make([]*Shape, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.shapes[id])
	}
	return out
}
