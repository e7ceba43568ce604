package codegen

import (
	"github.com/loomlang/loom/internal/model"
)

// SymbolResolver derives the generated-code symbol for every shape in one
// pass. Resolution is deterministic and idempotent: the same identifier
// always resolves to the identical symbol within a pass.
type SymbolResolver struct {
	model *model.Model
	table *SymbolTable
}

// NewSymbolResolver creates a resolver over the model, assigning into the
// given table.
func NewSymbolResolver(m *model.Model, table *SymbolTable) (*SymbolResolver, error) {
	if m == nil {
		return nil, &MissingStateError{Component: "symbol resolver", Field: "a model"}
	}
	if table == nil {
		return nil, &MissingStateError{Component: "symbol resolver", Field: "a symbol table"}
	}
	return &SymbolResolver{model: m, table: table}, nil
}

// Resolve returns the symbol for the shape with the given identifier.
func (r *SymbolResolver) Resolve(id model.ShapeID) (Symbol, error) {
	shape, err := r.model.Expect(id)
	if err != nil {
		return Symbol{}, err
	}
	return r.ResolveShape(shape)
}

// ResolveShape returns the symbol for a shape. Prelude shapes and
// user-declared scalar leaves resolve to the fixed universe symbols; enums
// and aggregates are assigned named symbols. Structures get reference
// semantics since they may be optional or mutually recursive; unions are
// interfaces, which already carry nil and indirection, so they stay value
// symbols.
func (r *SymbolResolver) ResolveShape(shape *model.Shape) (Symbol, error) {
	if shape.ID.Namespace == model.PreludeNamespace {
		if sym, ok := UniverseSymbol(shape.ID.Name); ok {
			return sym, nil
		}
		return Symbol{}, &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	}

	switch shape.Kind {
	case model.KindBoolean, model.KindByte, model.KindShort, model.KindInteger,
		model.KindLong, model.KindFloat, model.KindDouble, model.KindBigInteger,
		model.KindBigDecimal, model.KindBlob, model.KindString, model.KindTimestamp,
		model.KindDocument:
		return universeForKind(shape)
	case model.KindEnum, model.KindList, model.KindSet, model.KindMap, model.KindUnion:
		return r.table.AssignValue(shape, GoName(shape.ID.Name, true)), nil
	case model.KindStructure:
		return r.table.AssignReference(shape, GoName(shape.ID.Name, true)), nil
	case model.KindOperation, model.KindResource, model.KindService:
		return r.table.AssignValue(shape, GoName(shape.ID.Name, true)), nil
	case model.KindMember:
		return Symbol{}, &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	default:
		return Symbol{}, &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	}
}

// universeForKind maps a user-declared scalar leaf to the universe symbol
// of its kind.
func universeForKind(shape *model.Shape) (Symbol, error) {
	var name string
	switch shape.Kind {
	case model.KindBoolean:
		name = "Boolean"
	case model.KindByte:
		name = "Byte"
	case model.KindShort:
		name = "Short"
	case model.KindInteger:
		name = "Integer"
	case model.KindLong:
		name = "Long"
	case model.KindFloat:
		name = "Float"
	case model.KindDouble:
		name = "Double"
	case model.KindBigInteger:
		name = "BigInteger"
	case model.KindBigDecimal:
		name = "BigDecimal"
	case model.KindBlob:
		name = "Blob"
	case model.KindString:
		name = "String"
	case model.KindTimestamp:
		name = "Timestamp"
	case model.KindDocument:
		name = "Document"
	default:
		return Symbol{}, &model.UnsupportedShapeError{ID: shape.ID, Kind: shape.Kind}
	}
	sym, _ := UniverseSymbol(name)
	return sym, nil
}

// Table exposes the underlying symbol table.
func (r *SymbolResolver) Table() *SymbolTable {
	return r.table
}

// Model exposes the model being resolved.
func (r *SymbolResolver) Model() *model.Model {
	return r.model
}
