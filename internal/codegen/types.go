package codegen

import (
	"github.com/loomlang/loom/internal/model"
)

// TypeGenerator emits the Go type definition for each shape: structures
// become structs, enums become string types with constants, lists and sets
// become slice types, maps become map types, unions become a closed
// interface with one variant type per member.
type TypeGenerator struct {
	resolver *SymbolResolver
}

// NewTypeGenerator creates a type generator over the pass's resolver.
func NewTypeGenerator(resolver *SymbolResolver) (*TypeGenerator, error) {
	if resolver == nil {
		return nil, &MissingStateError{Component: "type generator", Field: "a symbol resolver"}
	}
	return &TypeGenerator{resolver: resolver}, nil
}

// GenerateShape emits the type definition for one shape. Scalar leaves map
// onto universe types and emit nothing, as do service, operation, and
// resource shapes, which exist only as descriptors.
func (g *TypeGenerator) GenerateShape(w *Writer, shape *model.Shape, sym Symbol) error {
	switch shape.Kind {
	case model.KindBoolean, model.KindByte, model.KindShort, model.KindInteger,
		model.KindLong, model.KindFloat, model.KindDouble, model.KindBigInteger,
		model.KindBigDecimal, model.KindBlob, model.KindString, model.KindTimestamp,
		model.KindDocument:
		return nil
	case model.KindEnum:
		return g.generateEnum(w, shape, sym)
	case model.KindList, model.KindSet:
		return g.generateList(w, shape, sym)
	case model.KindMap:
		return g.generateMap(w, shape, sym)
	case model.KindStructure:
		return g.generateStructure(w, shape, sym)
	case model.KindUnion:
		return g.generateUnion(w, shape, sym)
	case model.KindOperation, model.KindResource, model.KindService:
		return nil
	case model.KindMember:
		return &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	default:
		return &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	}
}

func (g *TypeGenerator) generateEnum(w *Writer, shape *model.Shape, sym Symbol) error {
	g.writeDoc(w, shape.Traits, sym.Name)
	w.Writef("type %s string", sym.Name)

	if len(shape.Members) == 0 {
		return nil
	}

	w.Writef("")
	w.OpenBlock("const (")
	for _, m := range shape.Members {
		value := m.Name
		if tr, ok := m.Traits.Get(model.TraitIDEnumValue); ok {
			value = tr.(model.EnumValueTrait).Value
		}
		w.Writef("%s%s %s = %q", sym.Name, GoName(m.Name, true), sym.Name, value)
	}
	w.CloseBlock(")")
	return nil
}

func (g *TypeGenerator) generateList(w *Writer, shape *model.Shape, sym Symbol) error {
	elem, ok := shape.Element()
	if !ok {
		return &MissingStateError{Component: "type generator", Field: "an element member on " + shape.ID.String()}
	}
	elemSym, err := g.resolver.Resolve(elem.Target)
	if err != nil {
		return err
	}
	g.writeDoc(w, shape.Traits, sym.Name)
	w.Writef("type %s []%s", sym.Name, w.TypeRef(elemSym))
	return nil
}

func (g *TypeGenerator) generateMap(w *Writer, shape *model.Shape, sym Symbol) error {
	key, okKey := shape.Member(model.KeyMemberName)
	value, okValue := shape.Member(model.ValueMemberName)
	if !okKey || !okValue {
		return &MissingStateError{Component: "type generator", Field: "key and value members on " + shape.ID.String()}
	}
	keySym, err := g.resolver.Resolve(key.Target)
	if err != nil {
		return err
	}
	valueSym, err := g.resolver.Resolve(value.Target)
	if err != nil {
		return err
	}
	g.writeDoc(w, shape.Traits, sym.Name)
	w.Writef("type %s map[%s]%s", sym.Name, w.SymbolRef(keySym), w.TypeRef(valueSym))
	return nil
}

func (g *TypeGenerator) generateStructure(w *Writer, shape *model.Shape, sym Symbol) error {
	g.writeDoc(w, shape.Traits, sym.Name)
	w.OpenBlock("type %s struct {", sym.Name)
	for i, m := range shape.Members {
		fieldType, err := g.fieldType(w, m)
		if err != nil {
			return err
		}
		if _, ok := m.Traits.Get(model.TraitIDDocumentation); ok && i > 0 {
			w.Writef("")
		}
		g.writeDoc(w, m.Traits, GoName(m.Name, true))
		w.Writef("%s %s", GoName(m.Name, true), fieldType)
	}
	w.CloseBlock("}")
	return nil
}

func (g *TypeGenerator) generateUnion(w *Writer, shape *model.Shape, sym Symbol) error {
	g.writeDoc(w, shape.Traits, sym.Name)
	w.OpenBlock("type %s interface {", sym.Name)
	w.Writef("is%s()", sym.Name)
	w.CloseBlock("}")

	for _, m := range shape.Members {
		targetSym, err := g.resolver.Resolve(m.Target)
		if err != nil {
			return err
		}
		variant := sym.Name + "Member" + GoName(m.Name, true)
		w.Writef("")
		w.OpenBlock("type %s struct {", variant)
		w.Writef("Value %s", w.TypeRef(targetSym))
		w.CloseBlock("}")
		w.Writef("")
		w.Writef("func (%s) is%s() {}", variant, sym.Name)
	}
	return nil
}

// fieldType renders a structure field's type. Reference-semantics targets
// are already pointers; scalar members without a required trait are made
// pointers so absence is representable.
func (g *TypeGenerator) fieldType(w *Writer, m *model.Member) (string, error) {
	target, err := g.resolver.Model().Expect(m.Target)
	if err != nil {
		return "", err
	}
	targetSym, err := g.resolver.ResolveShape(target)
	if err != nil {
		return "", err
	}

	ref := w.TypeRef(targetSym)
	if targetSym.Reference {
		return ref, nil
	}
	if target.Kind.IsScalar() && target.Kind != model.KindBlob &&
		target.Kind != model.KindDocument && !m.Traits.Has(model.TraitIDRequired) {
		return "*" + ref, nil
	}
	return ref, nil
}

// writeDoc renders a documentation trait as a doc comment.
func (g *TypeGenerator) writeDoc(w *Writer, ts model.TraitSet, name string) {
	tr, ok := ts.Get(model.TraitIDDocumentation)
	if !ok {
		return
	}
	w.Writef("// %s %s", name, tr.(model.DocumentationTrait).Value)
}
