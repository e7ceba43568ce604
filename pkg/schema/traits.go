package schema

// Trait kind identifiers mirrored from the model vocabulary.
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

// DocumentationTrait carries documentation text.
type DocumentationTrait struct {
	Value string
}

func (DocumentationTrait) TraitID() string { return TraitIDDocumentation }

// RequiredTrait marks a member as mandatory.
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

// ErrorTrait marks a structure as an error response.
type ErrorTrait struct {
	Fault string
}

func (ErrorTrait) TraitID() string { return TraitIDError }

// DefaultTrait records a member's default value.
type DefaultTrait struct {
	Value any
}

func (DefaultTrait) TraitID() string { return TraitIDDefault }

// DeprecatedTrait marks a shape as deprecated.
type DeprecatedTrait struct {
	Message string
}

func (DeprecatedTrait) TraitID() string { return TraitIDDeprecated }

// SyntheticCloneTrait records that a shape is a renamed structural copy of
// the named archetype.
type SyntheticCloneTrait struct {
	Archetype string
}

func (SyntheticCloneTrait) TraitID() string { return TraitIDSyntheticClone }
