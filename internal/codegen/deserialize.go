package codegen

import (
	"fmt"

	"github.com/loomlang/loom/internal/model"
)

// DecodeRuntimePackage is the import path of the streaming decoder
// generated deserializers read from.
const DecodeRuntimePackage = "github.com/loomlang/loom/pkg/decode"

// DeserializerGenerator emits per-shape decode logic. Aggregate decoders
// dispatch on the element shape's kind and fail fast: the first element
// failure propagates immediately and no partial aggregate is completed.
type DeserializerGenerator struct {
	resolver *SymbolResolver
}

// NewDeserializerGenerator creates a deserializer generator over the pass's
// resolver.
func NewDeserializerGenerator(resolver *SymbolResolver) (*DeserializerGenerator, error) {
	if resolver == nil {
		return nil, &MissingStateError{Component: "deserializer generator", Field: "a symbol resolver"}
	}
	return &DeserializerGenerator{resolver: resolver}, nil
}

// DeserializerName returns the function name a list, set, map, or union
// shape's decoder is declared under.
func DeserializerName(sym Symbol) string {
	return "deserialize" + sym.Name
}

// GenerateShape emits the decoder for one shape. Leaf shapes decode inline
// at their use sites and emit nothing; service, operation, and resource
// shapes carry no wire representation.
func (g *DeserializerGenerator) GenerateShape(w *Writer, shape *model.Shape, sym Symbol) error {
	switch shape.Kind {
	case model.KindBoolean, model.KindByte, model.KindShort, model.KindInteger,
		model.KindLong, model.KindFloat, model.KindDouble, model.KindBigInteger,
		model.KindBigDecimal, model.KindBlob, model.KindString, model.KindEnum,
		model.KindTimestamp, model.KindDocument:
		return nil
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

func (g *DeserializerGenerator) decoderType(w *Writer) string {
	return "*" + w.SymbolRef(Symbol{Name: "Decoder", Namespace: DecodeRuntimePackage})
}

func (g *DeserializerGenerator) generateList(w *Writer, shape *model.Shape, sym Symbol) error {
	elem, ok := shape.Element()
	if !ok {
		return &MissingStateError{Component: "deserializer generator", Field: "an element member on " + shape.ID.String()}
	}
	target, err := g.resolver.Model().Expect(elem.Target)
	if err != nil {
		return err
	}

	w.OpenBlock("func %s(decoder %s, v *%s) error {", DeserializerName(sym), g.decoderType(w), sym.Name)
	w.OpenBlock("if err := decoder.StartList(); err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.OpenBlock("for decoder.More() {")
	if err := g.writeElementDecode(w, target, func(expr string) {
		w.Writef("*v = append(*v, %s)", expr)
	}); err != nil {
		return err
	}
	w.CloseBlock("}")
	w.Writef("return decoder.EndList()")
	w.CloseBlock("}")
	return nil
}

func (g *DeserializerGenerator) generateMap(w *Writer, shape *model.Shape, sym Symbol) error {
	value, ok := shape.Member(model.ValueMemberName)
	if !ok {
		return &MissingStateError{Component: "deserializer generator", Field: "a value member on " + shape.ID.String()}
	}
	target, err := g.resolver.Model().Expect(value.Target)
	if err != nil {
		return err
	}

	w.OpenBlock("func %s(decoder %s, v *%s) error {", DeserializerName(sym), g.decoderType(w), sym.Name)
	w.OpenBlock("if err := decoder.StartObject(); err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.OpenBlock("if *v == nil {")
	w.Writef("*v = %s{}", sym.Name)
	w.CloseBlock("}")
	w.OpenBlock("for decoder.More() {")
	w.Writef("key, err := decoder.ReadString()")
	w.OpenBlock("if err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	if err := g.writeElementDecode(w, target, func(expr string) {
		w.Writef("(*v)[key] = %s", expr)
	}); err != nil {
		return err
	}
	w.CloseBlock("}")
	w.Writef("return decoder.EndObject()")
	w.CloseBlock("}")
	return nil
}

func (g *DeserializerGenerator) generateStructure(w *Writer, shape *model.Shape, sym Symbol) error {
	w.OpenBlock("func (v *%s) decode(decoder %s) error {", sym.Name, g.decoderType(w))
	w.OpenBlock("if err := decoder.StartObject(); err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.OpenBlock("for decoder.More() {")
	w.Writef("key, err := decoder.ReadString()")
	w.OpenBlock("if err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.Writef("switch key {")
	for _, m := range shape.Members {
		target, err := g.resolver.Model().Expect(m.Target)
		if err != nil {
			return err
		}
		fieldType, err := g.fieldPointerness(m, target)
		if err != nil {
			return err
		}
		w.Writef("case %q:", m.Name)
		w.indentLvl++
		field := GoName(m.Name, true)
		err = g.writeElementDecode(w, target, func(expr string) {
			if fieldType == fieldPointer {
				w.Writef("fv := %s", expr)
				w.Writef("v.%s = &fv", field)
			} else {
				w.Writef("v.%s = %s", field, expr)
			}
		})
		w.indentLvl--
		if err != nil {
			return err
		}
	}
	w.Writef("default:")
	w.indentLvl++
	w.OpenBlock("if err := decoder.Skip(); err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.indentLvl--
	w.Writef("}")
	w.CloseBlock("}")
	w.Writef("return decoder.EndObject()")
	w.CloseBlock("}")
	return nil
}

func (g *DeserializerGenerator) generateUnion(w *Writer, shape *model.Shape, sym Symbol) error {
	w.OpenBlock("func %s(decoder %s, v *%s) error {", DeserializerName(sym), g.decoderType(w), sym.Name)
	w.OpenBlock("if err := decoder.StartObject(); err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.OpenBlock("for decoder.More() {")
	w.Writef("key, err := decoder.ReadString()")
	w.OpenBlock("if err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.Writef("switch key {")
	for _, m := range shape.Members {
		target, err := g.resolver.Model().Expect(m.Target)
		if err != nil {
			return err
		}
		variant := sym.Name + "Member" + GoName(m.Name, true)
		w.Writef("case %q:", m.Name)
		w.indentLvl++
		err = g.writeElementDecode(w, target, func(expr string) {
			w.Writef("*v = %s{Value: %s}", variant, expr)
		})
		w.indentLvl--
		if err != nil {
			return err
		}
	}
	w.Writef("default:")
	w.indentLvl++
	w.OpenBlock("if err := decoder.Skip(); err != nil {")
	w.Writef("return err")
	w.CloseBlock("}")
	w.indentLvl--
	w.Writef("}")
	w.CloseBlock("}")
	w.Writef("return decoder.EndObject()")
	w.CloseBlock("}")
	return nil
}

// writeElementDecode emits the decode of one element value into a locally
// scoped variable and hands the finished expression to assign. Dispatch is
// by the element shape's kind; enum values are read as plain strings and
// cast to the enum's named type afterwards. Every wire-representable kind
// consumes exactly one value, so the token stream stays aligned; a kind
// with no wire representation aborts generation rather than leaving an
// empty branch behind.
func (g *DeserializerGenerator) writeElementDecode(w *Writer, target *model.Shape, assign func(expr string)) error {
	targetSym, err := g.resolver.ResolveShape(target)
	if err != nil {
		return err
	}

	readCall := func(method string) {
		w.Writef("val, err := decoder.%s()", method)
		w.OpenBlock("if err != nil {")
		w.Writef("return err")
		w.CloseBlock("}")
	}

	switch target.Kind {
	case model.KindString:
		readCall("ReadString")
		assign("val")
	case model.KindEnum:
		readCall("ReadString")
		assign(fmt.Sprintf("%s(val)", w.SymbolRef(targetSym)))
	case model.KindStructure:
		w.Writef("val := &%s{}", w.SymbolRef(targetSym))
		w.OpenBlock("if err := val.decode(decoder); err != nil {")
		w.Writef("return err")
		w.CloseBlock("}")
		assign("val")
	case model.KindBlob:
		readCall("ReadBytes")
		assign("val")
	case model.KindInteger:
		readCall("ReadInt32")
		assign("val")
	case model.KindLong:
		readCall("ReadInt64")
		assign("val")
	case model.KindFloat:
		readCall("ReadFloat32")
		assign("val")
	case model.KindDouble:
		readCall("ReadFloat64")
		assign("val")
	case model.KindBoolean:
		readCall("ReadBool")
		assign("val")
	case model.KindByte:
		readCall("ReadInt8")
		assign("val")
	case model.KindShort:
		readCall("ReadInt16")
		assign("val")
	case model.KindTimestamp:
		readCall("ReadTime")
		assign("val")
	case model.KindBigInteger:
		readCall("ReadBigInt")
		assign("val")
	case model.KindBigDecimal:
		readCall("ReadBigFloat")
		assign("val")
	case model.KindDocument:
		readCall("ReadAny")
		assign("val")
	case model.KindUnion, model.KindMap:
		w.Writef("var val %s", w.SymbolRef(targetSym))
		w.OpenBlock("if err := %s(decoder, &val); err != nil {", DeserializerName(targetSym))
		w.Writef("return err")
		w.CloseBlock("}")
		assign("val")
	case model.KindList, model.KindSet:
		w.Writef("var val %s", w.SymbolRef(targetSym))
		w.OpenBlock("if err := %s(decoder, &val); err != nil {", DeserializerName(targetSym))
		w.Writef("return err")
		w.CloseBlock("}")
		assign("val")
	case model.KindMember, model.KindOperation, model.KindResource, model.KindService:
		return &model.UnsupportedShapeError{ID: target.ID, Kind: target.Kind}
	default:
		return &model.UnsupportedShapeError{ID: target.ID, Kind: target.Kind}
	}
	return nil
}

type fieldKind int

const (
	fieldDirect fieldKind = iota
	fieldPointer
)

// fieldPointerness mirrors the type generator's optional-scalar pointer
// rule so decoded values land in the right representation.
func (g *DeserializerGenerator) fieldPointerness(m *model.Member, target *model.Shape) (fieldKind, error) {
	targetSym, err := g.resolver.ResolveShape(target)
	if err != nil {
		return fieldDirect, err
	}
	if targetSym.Reference {
		return fieldDirect, nil
	}
	if target.Kind.IsScalar() && target.Kind != model.KindBlob &&
		target.Kind != model.KindDocument && !m.Traits.Has(model.TraitIDRequired) {
		return fieldPointer, nil
	}
	return fieldDirect, nil
}
