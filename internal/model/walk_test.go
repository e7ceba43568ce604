package model

import (
	"errors"
	"testing"
)

func buildCyclicModel() *Model {
	// A structure containing, via a member, itself.
	m := NewModel()
	a := &Shape{
		ID:     MustParseShapeID("ns#A"),
		Kind:   KindStructure,
		Traits: TraitSet{},
		Members: []*Member{
			{Name: "self", Target: MustParseShapeID("ns#A"), Traits: TraitSet{}},
		},
	}
	m.Add(a)
	return m
}

func TestWalkTerminatesOnDirectCycle(t *testing.T) {
	m := buildCyclicModel()

	var visits []string
	w := NewWalker(m)
	err := w.Walk(MustParseShapeID("ns#A"), func(s *Shape) error {
		visits = append(visits, s.ID.String())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(visits) != 1 || visits[0] != "ns#A" {
		t.Errorf("expected exactly one visit of ns#A, got %v", visits)
	}
}

func TestWalkTerminatesOnIndirectCycle(t *testing.T) {
	m := NewModel()
	m.Add(&Shape{
		ID:   MustParseShapeID("ns#A"),
		Kind: KindStructure,
		Members: []*Member{
			{Name: "b", Target: MustParseShapeID("ns#B"), Traits: TraitSet{}},
		},
		Traits: TraitSet{},
	})
	m.Add(&Shape{
		ID:   MustParseShapeID("ns#B"),
		Kind: KindStructure,
		Members: []*Member{
			{Name: "a", Target: MustParseShapeID("ns#A"), Traits: TraitSet{}},
		},
		Traits: TraitSet{},
	})

	var visits []string
	w := NewWalker(m)
	err := w.Walk(MustParseShapeID("ns#A"), func(s *Shape) error {
		visits = append(visits, s.ID.String())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(visits) != 2 {
		t.Errorf("expected two visits, got %v", visits)
	}
}

func TestWalkRevisitIsIdempotent(t *testing.T) {
	m := buildCyclicModel()
	w := NewWalker(m)

	count := 0
	visit := func(*Shape) error { count++; return nil }

	if err := w.Walk(MustParseShapeID("ns#A"), visit); err != nil {
		t.Fatalf("first walk failed: %v", err)
	}
	if err := w.Walk(MustParseShapeID("ns#A"), visit); err != nil {
		t.Fatalf("second walk failed: %v", err)
	}
	if count != 1 {
		t.Errorf("revisit in the same pass ran the visitor %d times, want 1", count)
	}
}

func TestWalkUnknownKindFails(t *testing.T) {
	m := NewModel()
	m.Add(&Shape{
		ID:     MustParseShapeID("ns#Weird"),
		Kind:   ShapeKind(99),
		Traits: TraitSet{},
	})

	w := NewWalker(m)
	err := w.Walk(MustParseShapeID("ns#Weird"), func(*Shape) error { return nil })

	var unsupported *UnsupportedShapeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedShapeError, got %v", err)
	}
	if unsupported.Kind != ShapeKind(99) {
		t.Errorf("fault carries kind %v, want 99", unsupported.Kind)
	}
}

func TestWalkMissingShapeFails(t *testing.T) {
	m := NewModel()
	w := NewWalker(m)
	if err := w.Walk(MustParseShapeID("ns#Nope"), func(*Shape) error { return nil }); err == nil {
		t.Fatal("expected error for missing shape")
	}
}
