package model

import "fmt"

// UnsupportedShapeError reports that traversal or dispatch reached a shape
// kind with no defined handling. It always aborts the whole generation pass.
type UnsupportedShapeError struct {
	ID   ShapeID
	Kind ShapeKind
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape kind %s for shape %s", e.Kind, e.ID)
}

// Walker performs cycle-tolerant traversal over the shape graph. Visits are
// idempotent per walker: a shape identifier reached twice is visited once,
// which both terminates cycles and guarantees one descriptor per shape.
type Walker struct {
	model   *Model
	visited map[ShapeID]bool
}

// NewWalker creates a walker over the given model. One walker corresponds to
// one generation pass.
func NewWalker(m *Model) *Walker {
	return &Walker{model: m, visited: make(map[ShapeID]bool)}
}

// Seen reports whether the walker already visited the identifier.
func (w *Walker) Seen(id ShapeID) bool {
	return w.visited[id]
}

// Walk visits the shape with the given identifier and, recursively, every
// shape reachable from it, invoking visit once per distinct shape in
// first-reached order. Cyclic edges terminate at the visited-set check.
func (w *Walker) Walk(id ShapeID, visit func(*Shape) error) error {
	if w.visited[id] {
		return nil
	}
	w.visited[id] = true

	shape, err := w.model.Expect(id)
	if err != nil {
		return err
	}

	if err := visit(shape); err != nil {
		return err
	}

	targets, err := childTargets(shape)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if err := w.Walk(target, visit); err != nil {
			return err
		}
	}
	return nil
}

// childTargets returns the identifiers a shape's edges point at. The switch
// is exhaustive over ShapeKind; a kind outside the enumeration is a hard
// unsupported-shape failure.
func childTargets(s *Shape) ([]ShapeID, error) {
	switch s.Kind {
	case KindBoolean, KindByte, KindShort, KindInteger, KindLong,
		KindFloat, KindDouble, KindBigInteger, KindBigDecimal,
		KindBlob, KindString, KindEnum, KindTimestamp, KindDocument:
		// Enum members carry wire values, not edges to other shapes.
		return nil, nil
	case KindList, KindSet, KindMap, KindStructure, KindUnion,
		KindOperation, KindResource, KindService:
		targets := make([]ShapeID, 0, len(s.Members))
		for _, m := range s.Members {
			targets = append(targets, m.Target)
		}
		return targets, nil
	case KindMember:
		return nil, &UnsupportedShapeError{ID: s.ID, Kind: s.Kind}
	default:
		return nil, &UnsupportedShapeError{ID: s.ID, Kind: s.Kind}
	}
}
