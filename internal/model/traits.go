package model

// Trait is a metadata annotation attached to a shape or member. A shape
// carries at most one instance per trait kind.
type Trait interface {
	// TraitID returns the trait kind identifier, e.g. "loom.api#required".
	TraitID() string
}

// Trait kind identifiers.
const (
	TraitIDDocumentation  = "loom.api#documentation"
	TraitIDRequired       = "loom.api#required"
	TraitIDSensitive      = "loom.api#sensitive"
	TraitIDEnumValue      = "loom.api#enumValue"
	TraitIDError          = "loom.api#error"
	TraitIDDefault        = "loom.api#default"
	TraitIDDeprecated     = "loom.api#deprecated"
	TraitIDSyntheticClone = "loom.synthetic#clone"
)

// DocumentationTrait attaches free-form documentation text.
type DocumentationTrait struct {
	Value string
}

func (DocumentationTrait) TraitID() string { return TraitIDDocumentation }

// RequiredTrait marks a structure member as mandatory.
type RequiredTrait struct{}

func (RequiredTrait) TraitID() string { return TraitIDRequired }

// SensitiveTrait marks a shape as carrying sensitive data.
type SensitiveTrait struct{}

func (SensitiveTrait) TraitID() string { return TraitIDSensitive }

// EnumValueTrait binds an enum member to its wire value.
type EnumValueTrait struct {
	Value string
}

func (EnumValueTrait) TraitID() string { return TraitIDEnumValue }

// ErrorTrait marks a structure as an error response. Fault is "client" or
// "server".
type ErrorTrait struct {
	Fault string
}

func (ErrorTrait) TraitID() string { return TraitIDError }

// DefaultTrait records a default value for a member.
type DefaultTrait struct {
	Value any
}

func (DefaultTrait) TraitID() string { return TraitIDDefault }

// DeprecatedTrait marks a shape as deprecated.
type DeprecatedTrait struct {
	Message string
}

func (DeprecatedTrait) TraitID() string { return TraitIDDeprecated }

// SyntheticCloneTrait is the provenance tag attached to every shape produced
// by cloning. Archetype names the immediate shape the clone was copied from;
// cloning a clone records the clone, never the transitive original.
type SyntheticCloneTrait struct {
	Archetype ShapeID
}

func (SyntheticCloneTrait) TraitID() string { return TraitIDSyntheticClone }

// TraitSet holds the traits attached to one shape or member, at most one per
// trait kind.
type TraitSet map[string]Trait

// Set records a trait, replacing any prior instance of the same kind.
func (ts TraitSet) Set(tr Trait) {
	ts[tr.TraitID()] = tr
}

// Get returns the trait of the given kind, if attached.
func (ts TraitSet) Get(id string) (Trait, bool) {
	tr, ok := ts[id]
	return tr, ok
}

// Has reports whether a trait of the given kind is attached.
func (ts TraitSet) Has(id string) bool {
	_, ok := ts[id]
	return ok
}

// Clone returns a shallow copy of the set.
func (ts TraitSet) Clone() TraitSet {
	out := make(TraitSet, len(ts))
	for id, tr := range ts {
		out[id] = tr
	}
	return out
}
