package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/loomlang/loom/internal/model"
)

// Symbol is the generated-code identity assigned to a shape or utility
// identifier: a display name, the import path of the package that owns it
// (empty means the current compilation unit, no import needed), and whether
// the generated representation is passed by value or by reference.
type Symbol struct {
	Name      string
	Namespace string
	// Reference marks symbols whose generated representation needs shared or
	// aliased access (pointers): optional, mutually recursive, or large
	// types.
	Reference bool
	// Shape is an optional back-reference to the originating shape.
	Shape model.ShapeID
}

// ValueSymbol creates a symbol with value semantics and no namespace.
func ValueSymbol(name string) Symbol {
	return Symbol{Name: name}
}

// ReferenceSymbol creates a symbol with reference semantics and no
// namespace.
func ReferenceSymbol(name string) Symbol {
	return Symbol{Name: name, Reference: true}
}

// WithNamespace returns a copy of the symbol owned by the given import path.
func (s Symbol) WithNamespace(ns string) Symbol {
	s.Namespace = ns
	return s
}

// Exported reports whether the symbol is part of the generated package's
// public surface.
func (s Symbol) Exported() bool {
	if s.Name == "" {
		return false
	}
	return unicode.IsUpper(rune(s.Name[0]))
}

// Ref renders the symbol as it appears at a use site inside its own
// package, prefixing the reference form with "*".
func (s Symbol) Ref() string {
	if s.Reference {
		return "*" + s.Name
	}
	return s.Name
}

// universe is the fixed table of predefined leaf-type symbols, keyed by
// prelude shape name. Callers never re-derive primitive identities.
var universe = map[string]Symbol{
	"Boolean":    {Name: "bool"},
	"Byte":       {Name: "int8"},
	"Short":      {Name: "int16"},
	"Integer":    {Name: "int32"},
	"Long":       {Name: "int64"},
	"Float":      {Name: "float32"},
	"Double":     {Name: "float64"},
	"BigInteger": {Name: "Int", Namespace: "math/big", Reference: true},
	"BigDecimal": {Name: "Float", Namespace: "math/big", Reference: true},
	"Blob":       {Name: "[]byte"},
	"String":     {Name: "string"},
	"Timestamp":  {Name: "Time", Namespace: "time"},
	"Document":   {Name: "any"},
}

// UniverseSymbol returns the predefined symbol for a prelude shape name.
func UniverseSymbol(name string) (Symbol, bool) {
	s, ok := universe[name]
	return s, ok
}

// SymbolTable assigns each shape a canonical symbol for one generation
// pass. Assignment is memoized per shape identifier, and two distinct
// shapes are never handed colliding (namespace, name) pairs: a taken name
// is deterministically disambiguated with a numeric suffix.
type SymbolTable struct {
	namespace string
	byShape   map[model.ShapeID]Symbol
	owners    map[string]model.ShapeID
}

// NewSymbolTable creates a table whose assigned symbols live in the given
// package import path.
func NewSymbolTable(namespace string) *SymbolTable {
	return &SymbolTable{
		namespace: namespace,
		byShape:   make(map[model.ShapeID]Symbol),
		owners:    make(map[string]model.ShapeID),
	}
}

// AssignValue assigns a value-semantics symbol to the shape.
func (t *SymbolTable) AssignValue(shape *model.Shape, baseName string) Symbol {
	return t.assign(shape, baseName, false)
}

// AssignReference assigns a reference-semantics symbol to the shape.
func (t *SymbolTable) AssignReference(shape *model.Shape, baseName string) Symbol {
	return t.assign(shape, baseName, true)
}

// Lookup returns the symbol previously assigned to the identifier.
func (t *SymbolTable) Lookup(id model.ShapeID) (Symbol, bool) {
	s, ok := t.byShape[id]
	return s, ok
}

func (t *SymbolTable) assign(shape *model.Shape, baseName string, reference bool) Symbol {
	if sym, ok := t.byShape[shape.ID]; ok {
		return sym
	}

	name := baseName
	for n := 2; ; n++ {
		owner, taken := t.owners[t.namespace+"."+name]
		if !taken || owner == shape.ID {
			break
		}
		name = fmt.Sprintf("%s%d", baseName, n)
	}

	sym := Symbol{
		Name:      name,
		Namespace: t.namespace,
		Reference: reference,
		Shape:     shape.ID,
	}
	t.byShape[shape.ID] = sym
	t.owners[t.namespace+"."+name] = shape.ID
	return sym
}

// GoName converts a model shape or member name to a Go identifier, exported
// or not. Common initialisms keep their Go casing.
func GoName(name string, exported bool) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, part := range parts {
		if i == 0 && !exported {
			parts[i] = strings.ToLower(part[:1]) + part[1:]
			continue
		}
		if upper, ok := initialisms[strings.ToLower(part)]; ok {
			parts[i] = upper
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

var initialisms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"uri":  "URI",
	"uuid": "UUID",
	"api":  "API",
	"http": "HTTP",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"ip":   "IP",
	"arn":  "ARN",
}
