package model

// NamingStrategy maps an original shape identifier to the identifier its
// clone should carry. It must be a pure function.
type NamingStrategy func(ShapeID) ShapeID

// CloneShape produces a structural copy of the shape with the given
// identifier, re-identified under the naming strategy. Member edges are
// rebuilt under the new parent identifier, so a clone of Foo named Foo2 owns
// members Foo2$a and Foo2$b, never aliases of Foo's. The clone carries
// exactly one provenance trait naming the immediate archetype: cloning a
// clone points at the clone, not transitively further back.
//
// The clone is returned, not inserted; callers decide whether it joins the
// model.
func CloneShape(m *Model, id ShapeID, rename NamingStrategy) (*Shape, error) {
	original, err := m.Expect(id)
	if err != nil {
		return nil, err
	}

	clone := &Shape{
		ID:     rename(id),
		Kind:   original.Kind,
		Traits: original.Traits.Clone(),
	}
	clone.Traits.Set(SyntheticCloneTrait{Archetype: original.ID})

	switch original.Kind {
	case KindBoolean, KindByte, KindShort, KindInteger, KindLong,
		KindFloat, KindDouble, KindBigInteger, KindBigDecimal,
		KindBlob, KindString, KindEnum, KindTimestamp, KindDocument:
		// Leaf shapes have no edges to rebuild. Enum value members, when
		// present, are copied like any other member set below.
		cloneMembers(original, clone)
	case KindList, KindSet, KindMap, KindStructure, KindUnion,
		KindOperation, KindResource, KindService:
		cloneMembers(original, clone)
	case KindMember:
		return nil, &UnsupportedShapeError{ID: original.ID, Kind: original.Kind}
	default:
		return nil, &UnsupportedShapeError{ID: original.ID, Kind: original.Kind}
	}

	return clone, nil
}

func cloneMembers(original, clone *Shape) {
	if len(original.Members) == 0 {
		return
	}
	clone.Members = make([]*Member, 0, len(original.Members))
	for _, m := range original.Members {
		clone.Members = append(clone.Members, &Member{
			Name:   m.Name,
			Target: m.Target,
			Traits: m.Traits.Clone(),
		})
	}
}
