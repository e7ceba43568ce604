// Package schema is the runtime descriptor library targeted by generated
// code. Each generated package declares one Schema value per shape and one
// MemberSchema value per member, giving callers a reflective view of the
// modeled types without re-parsing the model.
package schema

// Kind identifies the shape variant a Schema describes.
type Kind int

const (
	KindBoolean Kind = iota
	KindByte
	KindShort
	KindInteger
	KindLong
	KindFloat
	KindDouble
	KindBigInteger
	KindBigDecimal
	KindBlob
	KindString
	KindEnum
	KindTimestamp
	KindDocument
	KindList
	KindSet
	KindMap
	KindStructure
	KindUnion
	KindOperation
	KindResource
	KindService
)

// String returns the Go constant spelling of the kind, matching what the
// generator writes into descriptor bindings.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "KindBoolean"
	case KindByte:
		return "KindByte"
	case KindShort:
		return "KindShort"
	case KindInteger:
		return "KindInteger"
	case KindLong:
		return "KindLong"
	case KindFloat:
		return "KindFloat"
	case KindDouble:
		return "KindDouble"
	case KindBigInteger:
		return "KindBigInteger"
	case KindBigDecimal:
		return "KindBigDecimal"
	case KindBlob:
		return "KindBlob"
	case KindString:
		return "KindString"
	case KindEnum:
		return "KindEnum"
	case KindTimestamp:
		return "KindTimestamp"
	case KindDocument:
		return "KindDocument"
	case KindList:
		return "KindList"
	case KindSet:
		return "KindSet"
	case KindMap:
		return "KindMap"
	case KindStructure:
		return "KindStructure"
	case KindUnion:
		return "KindUnion"
	case KindOperation:
		return "KindOperation"
	case KindResource:
		return "KindResource"
	case KindService:
		return "KindService"
	default:
		return "KindUnknown"
	}
}

// Trait is a metadata entry attached to a Schema or MemberSchema.
type Trait interface {
	// TraitID returns the trait kind identifier.
	TraitID() string
}

// MemberSchema describes one named member of a shape.
type MemberSchema struct {
	// Parent is the schema of the containing shape.
	Parent *Schema
	// Name is the member's local name.
	Name string
	// Target is the absolute identifier of the shape the member points at,
	// e.g. "loom.api#String". The graph is kept as identifiers rather than
	// descriptor pointers so cyclic shapes bind without ordering concerns.
	Target string
	// Traits holds the member's metadata entries in rendered order.
	Traits []Trait
}

// Schema is the runtime descriptor of one shape.
type Schema struct {
	// Kind is the shape variant.
	Kind Kind
	// ID is the absolute shape identifier, e.g. "example.weather#City".
	ID string
	// Traits holds the shape's own metadata entries in rendered order.
	Traits []Trait

	members []*MemberSchema
}

// New creates a shape descriptor. Generated code calls this once per shape.
func New(kind Kind, id string, traits ...Trait) *Schema {
	return &Schema{Kind: kind, ID: id, Traits: traits}
}

// Member binds a named member on the descriptor, pointing at the target
// shape identifier, and returns its schema. Generated code calls this once
// per member, in member order.
func (s *Schema) Member(name, target string, traits ...Trait) *MemberSchema {
	m := &MemberSchema{Parent: s, Name: name, Target: target, Traits: traits}
	s.members = append(s.members, m)
	return m
}

// Attach appends top-level traits to a descriptor after its member
// bindings. Generated code calls this at most once per shape.
func Attach(s *Schema, traits ...Trait) *Schema {
	s.Traits = append(s.Traits, traits...)
	return s
}

// Members returns the bound members in declaration order.
func (s *Schema) Members() []*MemberSchema {
	return s.members
}

// GetTrait returns the first attached trait with the given identifier.
func (s *Schema) GetTrait(id string) (Trait, bool) {
	for _, tr := range s.Traits {
		if tr.TraitID() == id {
			return tr, true
		}
	}
	return nil, false
}

// GetTrait returns the first attached trait with the given identifier.
func (m *MemberSchema) GetTrait(id string) (Trait, bool) {
	for _, tr := range m.Traits {
		if tr.TraitID() == id {
			return tr, true
		}
	}
	return nil, false
}
