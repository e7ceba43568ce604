package codegen

import (
	"github.com/loomlang/loom/internal/model"
)

// SchemaGenerator emits runtime descriptor bindings: per shape, one
// descriptor binding, one named binding per member, then the shape's own
// trait attachments. Emission is idempotent per pass; a shape reached twice
// produces one descriptor.
type SchemaGenerator struct {
	table *SymbolTable
	done  map[model.ShapeID]string
}

// NewSchemaGenerator creates a schema generator bound to the pass's symbol
// table.
func NewSchemaGenerator(table *SymbolTable) (*SchemaGenerator, error) {
	if table == nil {
		return nil, &MissingStateError{Component: "schema generator", Field: "a symbol table"}
	}
	return &SchemaGenerator{
		table: table,
		done:  make(map[model.ShapeID]string),
	}, nil
}

// DescriptorName returns the binding name a shape's descriptor is declared
// under. It inherits the symbol's casing, so the descriptor is exported
// exactly when the shape is part of the generated package's public surface.
func DescriptorName(sym Symbol) string {
	return sym.Name + "Schema"
}

// GenerateShape emits the descriptor for one shape. Revisits in the same
// pass emit nothing and report success, which keeps traversal over cyclic
// graphs terminating with exactly one descriptor per shape.
func (g *SchemaGenerator) GenerateShape(w *Writer, shape *model.Shape, sym Symbol) error {
	if _, ok := g.done[shape.ID]; ok {
		return nil
	}

	name := DescriptorName(sym)
	g.done[shape.ID] = name

	kindConst, err := schemaKindConst(shape)
	if err != nil {
		return err
	}

	w.Writef("var %s = %s(%s, %q)",
		name, schemaRef(w, "New"), schemaRef(w, kindConst), shape.ID.String())

	for _, m := range shape.Members {
		memberTraits := RenderTraits(w, m.Traits)
		if len(memberTraits) == 0 {
			w.Writef("var %s%s = %s.Member(%q, %q)", name, GoName(m.Name, true), name, m.Name, m.Target.String())
			continue
		}
		w.OpenBlock("var %s%s = %s.Member(%q, %q,", name, GoName(m.Name, true), name, m.Name, m.Target.String())
		for _, rendered := range memberTraits {
			w.Writef("%s,", rendered)
		}
		w.CloseBlock(")")
	}

	if ownTraits := RenderTraits(w, shape.Traits); len(ownTraits) > 0 {
		w.OpenBlock("var _ = %s(%s,", schemaRef(w, "Attach"), name)
		for _, rendered := range ownTraits {
			w.Writef("%s,", rendered)
		}
		w.CloseBlock(")")
	}

	return nil
}

// schemaKindConst maps a shape kind to the runtime Kind constant it is
// described by. Exhaustive over ShapeKind; member shapes never receive
// descriptors of their own, and an unknown kind is a hard failure.
func schemaKindConst(shape *model.Shape) (string, error) {
	switch shape.Kind {
	case model.KindBoolean:
		return "KindBoolean", nil
	case model.KindByte:
		return "KindByte", nil
	case model.KindShort:
		return "KindShort", nil
	case model.KindInteger:
		return "KindInteger", nil
	case model.KindLong:
		return "KindLong", nil
	case model.KindFloat:
		return "KindFloat", nil
	case model.KindDouble:
		return "KindDouble", nil
	case model.KindBigInteger:
		return "KindBigInteger", nil
	case model.KindBigDecimal:
		return "KindBigDecimal", nil
	case model.KindBlob:
		return "KindBlob", nil
	case model.KindString:
		return "KindString", nil
	case model.KindEnum:
		return "KindEnum", nil
	case model.KindTimestamp:
		return "KindTimestamp", nil
	case model.KindDocument:
		return "KindDocument", nil
	case model.KindList:
		return "KindList", nil
	case model.KindSet:
		return "KindSet", nil
	case model.KindMap:
		return "KindMap", nil
	case model.KindStructure:
		return "KindStructure", nil
	case model.KindUnion:
		return "KindUnion", nil
	case model.KindOperation:
		return "KindOperation", nil
	case model.KindResource:
		return "KindResource", nil
	case model.KindService:
		return "KindService", nil
	case model.KindMember:
		return "", &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	default:
		return "", &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	}
}
