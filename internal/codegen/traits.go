package codegen

import (
	"fmt"

	"github.com/loomlang/loom/internal/model"
)

// SchemaRuntimePackage is the import path of the descriptor runtime
// generated code links against.
const SchemaRuntimePackage = "github.com/loomlang/loom/pkg/schema"

// TraitRenderer renders one trait instance as the literal-valued structure
// invocation that attaches it to a generated descriptor.
type TraitRenderer func(w *Writer, tr model.Trait) string

type traitRegistration struct {
	id     string
	render TraitRenderer
}

// traitRegistry is the fixed trait-kind renderer registry, built once and
// never mutated. Registration order defines the order trait instances are
// rendered in, which keeps descriptor output reproducible. A trait kind
// with no entry here renders nothing.
var traitRegistry = []traitRegistration{
	{model.TraitIDDocumentation, renderDocumentationTrait},
	{model.TraitIDRequired, renderRequiredTrait},
	{model.TraitIDSensitive, renderSensitiveTrait},
	{model.TraitIDEnumValue, renderEnumValueTrait},
	{model.TraitIDError, renderErrorTrait},
	{model.TraitIDDefault, renderDefaultTrait},
	{model.TraitIDDeprecated, renderDeprecatedTrait},
	{model.TraitIDSyntheticClone, renderSyntheticCloneTrait},
}

// RenderTraits renders every registered trait in the set, in registry
// order. Unregistered trait kinds are skipped: they carry no
// codegen-visible effect.
func RenderTraits(w *Writer, ts model.TraitSet) []string {
	var out []string
	for _, reg := range traitRegistry {
		tr, ok := ts.Get(reg.id)
		if !ok {
			continue
		}
		out = append(out, reg.render(w, tr))
	}
	return out
}

func schemaRef(w *Writer, name string) string {
	return w.SymbolRef(Symbol{Name: name, Namespace: SchemaRuntimePackage})
}

func renderDocumentationTrait(w *Writer, tr model.Trait) string {
	t := tr.(model.DocumentationTrait)
	return fmt.Sprintf("%s{Value: %q}", schemaRef(w, "DocumentationTrait"), t.Value)
}

func renderRequiredTrait(w *Writer, tr model.Trait) string {
	return schemaRef(w, "RequiredTrait") + "{}"
}

func renderSensitiveTrait(w *Writer, tr model.Trait) string {
	return schemaRef(w, "SensitiveTrait") + "{}"
}

func renderEnumValueTrait(w *Writer, tr model.Trait) string {
	t := tr.(model.EnumValueTrait)
	return fmt.Sprintf("%s{Value: %q}", schemaRef(w, "EnumValueTrait"), t.Value)
}

func renderErrorTrait(w *Writer, tr model.Trait) string {
	t := tr.(model.ErrorTrait)
	return fmt.Sprintf("%s{Fault: %q}", schemaRef(w, "ErrorTrait"), t.Fault)
}

func renderDefaultTrait(w *Writer, tr model.Trait) string {
	t := tr.(model.DefaultTrait)
	return fmt.Sprintf("%s{Value: %s}", schemaRef(w, "DefaultTrait"), literal(t.Value))
}

func renderDeprecatedTrait(w *Writer, tr model.Trait) string {
	t := tr.(model.DeprecatedTrait)
	return fmt.Sprintf("%s{Message: %q}", schemaRef(w, "DeprecatedTrait"), t.Message)
}

func renderSyntheticCloneTrait(w *Writer, tr model.Trait) string {
	t := tr.(model.SyntheticCloneTrait)
	return fmt.Sprintf("%s{Archetype: %q}", schemaRef(w, "SyntheticCloneTrait"), t.Archetype.String())
}

// literal renders a trait field value in its natural Go literal form:
// strings quoted, everything else verbatim.
func literal(v any) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("%q", val)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v", val)
	}
}
