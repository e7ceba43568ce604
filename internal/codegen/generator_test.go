package codegen

import (
	"strings"
	"testing"

	"github.com/loomlang/loom/internal/model"
)

const weatherDoc = `
namespace: example.weather

shapes:
  Names:
    type: list
    member:
      target: String

  Suit:
    type: enum
    members:
      clubs:
        traits:
          enumValue: "clubs"
      hearts:
        traits:
          enumValue: "hearts"

  Suits:
    type: list
    member:
      target: Suit

  City:
    type: structure
    traits:
      documentation: "A city the service knows about."
    members:
      name:
        target: String
        traits:
          required: {}
      population:
        target: Long
`

func generate(t *testing.T, doc string) *MemoryManifest {
	t.Helper()
	m, err := model.LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("model load failed: %v", err)
	}

	gen, err := New(m, Config{
		Namespace: "example.com/gen/weather",
		Package:   "weather",
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	manifest := NewMemoryManifest()
	if err := gen.Run(manifest); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return manifest
}

func TestGenerateListOfString(t *testing.T) {
	manifest := generate(t, weatherDoc)

	content, ok := manifest.Files["names.go"]
	if !ok {
		t.Fatalf("names.go missing, wrote %v", manifest.Paths())
	}

	if !strings.Contains(content, "type Names []string") {
		t.Errorf("list type definition missing:\n%s", content)
	}
	if !strings.Contains(content, `var NamesSchema = schema.New(schema.KindList, "example.weather#Names")`) {
		t.Errorf("list schema descriptor missing:\n%s", content)
	}
	// No traits anywhere on the shape: no trait entries in bindings.
	if strings.Contains(content, "Trait{") {
		t.Errorf("unexpected trait entries for traitless list:\n%s", content)
	}
	// String elements append verbatim, no cast step.
	if !strings.Contains(content, "*v = append(*v, val)") {
		t.Errorf("decoder does not append read strings verbatim:\n%s", content)
	}
}

func TestGenerateEnumListCasts(t *testing.T) {
	manifest := generate(t, weatherDoc)

	content, ok := manifest.Files["suits.go"]
	if !ok {
		t.Fatalf("suits.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(content, "*v = append(*v, Suit(val))") {
		t.Errorf("enum elements not cast before append:\n%s", content)
	}

	enumFile, ok := manifest.Files["suit.go"]
	if !ok {
		t.Fatalf("suit.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(enumFile, "type Suit string") {
		t.Errorf("enum type missing:\n%s", enumFile)
	}
	if !strings.Contains(enumFile, `SuitHearts Suit = "hearts"`) {
		t.Errorf("enum constant missing:\n%s", enumFile)
	}
}

func TestGenerateStructure(t *testing.T) {
	manifest := generate(t, weatherDoc)

	content, ok := manifest.Files["city.go"]
	if !ok {
		t.Fatalf("city.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(content, "type City struct {") {
		t.Errorf("struct definition missing:\n%s", content)
	}
	// Required member lands as a plain field, optional scalar as a pointer.
	if !strings.Contains(content, "Name string") {
		t.Errorf("required field not direct:\n%s", content)
	}
	if !strings.Contains(content, "Population *int64") {
		t.Errorf("optional scalar field not a pointer:\n%s", content)
	}
	if !strings.Contains(content, "// City A city the service knows about.") {
		t.Errorf("documentation trait not rendered as doc comment:\n%s", content)
	}
}

func TestGenerateCyclicStructure(t *testing.T) {
	doc := `
namespace: example.tree

shapes:
  Node:
    type: structure
    members:
      value:
        target: String
      next:
        target: Node
`
	manifest := generate(t, doc)

	content, ok := manifest.Files["node.go"]
	if !ok {
		t.Fatalf("node.go missing, wrote %v", manifest.Paths())
	}
	// The cyclic member is a reference-typed field, not an inline expansion,
	// and exactly one descriptor exists.
	if !strings.Contains(content, "Next *Node") {
		t.Errorf("cyclic member not reference-typed:\n%s", content)
	}
	if strings.Count(content, "var NodeSchema = schema.New(") != 1 {
		t.Errorf("expected exactly one descriptor for cyclic shape:\n%s", content)
	}
}

func TestGenerateUnion(t *testing.T) {
	doc := `
namespace: example.geo

shapes:
  City:
    type: structure
    members:
      name:
        target: String
        traits:
          required: {}

  Location:
    type: union
    members:
      city:
        target: City
      label:
        target: String

  Locations:
    type: list
    member:
      target: Location

  Pin:
    type: structure
    members:
      loc:
        target: Location
`
	manifest := generate(t, doc)

	content, ok := manifest.Files["location.go"]
	if !ok {
		t.Fatalf("location.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(content, "type Location interface {") ||
		!strings.Contains(content, "isLocation()") {
		t.Errorf("union interface missing:\n%s", content)
	}
	if !strings.Contains(content, "type LocationMemberCity struct {") ||
		!strings.Contains(content, "Value *City") {
		t.Errorf("structure variant missing or not reference-typed:\n%s", content)
	}
	if !strings.Contains(content, "type LocationMemberLabel struct {") ||
		!strings.Contains(content, "Value string") {
		t.Errorf("string variant missing:\n%s", content)
	}
	if !strings.Contains(content, `var LocationSchema = schema.New(schema.KindUnion, "example.geo#Location")`) {
		t.Errorf("union descriptor missing:\n%s", content)
	}
	if !strings.Contains(content, "func deserializeLocation(decoder *decode.Decoder, v *Location) error {") {
		t.Errorf("union decoder missing:\n%s", content)
	}
	if !strings.Contains(content, "*v = LocationMemberLabel{Value: val}") {
		t.Errorf("string variant not wrapped on decode:\n%s", content)
	}

	// Union-typed fields and elements use the interface directly; the
	// decoders declare the same type, so the two sides agree.
	list, ok := manifest.Files["locations.go"]
	if !ok {
		t.Fatalf("locations.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(list, "type Locations []Location") {
		t.Errorf("union element not value-typed:\n%s", list)
	}
	if !strings.Contains(list, "var val Location") ||
		!strings.Contains(list, "*v = append(*v, val)") {
		t.Errorf("union element decode and element type disagree:\n%s", list)
	}

	pin, ok := manifest.Files["pin.go"]
	if !ok {
		t.Fatalf("pin.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(pin, "Loc Location") {
		t.Errorf("union field not value-typed:\n%s", pin)
	}
	if !strings.Contains(pin, "v.Loc = val") {
		t.Errorf("union field decode and field type disagree:\n%s", pin)
	}
}

func TestGenerateMap(t *testing.T) {
	doc := `
namespace: example.geo

shapes:
  Ages:
    type: map
    key:
      target: String
    value:
      target: Integer
`
	manifest := generate(t, doc)

	content, ok := manifest.Files["ages.go"]
	if !ok {
		t.Fatalf("ages.go missing, wrote %v", manifest.Paths())
	}
	if !strings.Contains(content, "type Ages map[string]int32") {
		t.Errorf("map type definition missing:\n%s", content)
	}
	if !strings.Contains(content, `var AgesSchema = schema.New(schema.KindMap, "example.geo#Ages")`) {
		t.Errorf("map descriptor missing:\n%s", content)
	}
	if !strings.Contains(content, `var AgesSchemaKey = AgesSchema.Member("key", "loom.api#String")`) ||
		!strings.Contains(content, `var AgesSchemaValue = AgesSchema.Member("value", "loom.api#Integer")`) {
		t.Errorf("map member bindings missing their target links:\n%s", content)
	}
	if !strings.Contains(content, "func deserializeAges(decoder *decode.Decoder, v *Ages) error {") {
		t.Errorf("map decoder missing:\n%s", content)
	}
	if !strings.Contains(content, "(*v)[key] = val") {
		t.Errorf("map decoder does not store by key:\n%s", content)
	}
}

func TestGenerateHeaderAndPackage(t *testing.T) {
	manifest := generate(t, weatherDoc)

	for _, path := range manifest.Paths() {
		content := manifest.Files[path]
		if !strings.HasPrefix(content, "// Code generated by loom. DO NOT EDIT.\n\npackage weather\n") {
			t.Errorf("%s missing generated header or package clause:\n%s", path, content)
		}
	}
}

func TestGenerateImportsAreDeterministic(t *testing.T) {
	first := generate(t, weatherDoc)
	second := generate(t, weatherDoc)

	if len(first.Files) != len(second.Files) {
		t.Fatalf("pass output differs in file count: %d vs %d", len(first.Files), len(second.Files))
	}
	for path, content := range first.Files {
		if second.Files[path] != content {
			t.Errorf("%s differs between identical passes:\nfirst:\n%s\nsecond:\n%s", path, content, second.Files[path])
		}
	}
}

func TestGenerateMissingModelFails(t *testing.T) {
	if _, err := New(nil, Config{Namespace: "ns", Package: "pkg"}, nil); err == nil {
		t.Fatal("expected missing-state failure for nil model")
	}
}

func TestGenerateUnresolvedTargetAbortsWithoutOutput(t *testing.T) {
	doc := `
namespace: example.broken

shapes:
  Bad:
    type: list
    member:
      target: example.missing#Gone
`
	m, err := model.LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("model load failed: %v", err)
	}

	gen, err := New(m, Config{Namespace: "ns", Package: "pkg"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	manifest := NewMemoryManifest()
	if err := gen.Run(manifest); err == nil {
		t.Fatal("expected failure for unresolved target")
	}
	if len(manifest.Files) != 0 {
		t.Errorf("failed pass wrote partial output: %v", manifest.Paths())
	}
}
