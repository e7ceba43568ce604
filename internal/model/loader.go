package model

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// PreludeNamespace is the namespace of the built-in leaf shapes every model
// may reference without declaring them.
const PreludeNamespace = "loom.api"

var preludeKinds = map[string]ShapeKind{
	"Boolean":    KindBoolean,
	"Byte":       KindByte,
	"Short":      KindShort,
	"Integer":    KindInteger,
	"Long":       KindLong,
	"Float":      KindFloat,
	"Double":     KindDouble,
	"BigInteger": KindBigInteger,
	"BigDecimal": KindBigDecimal,
	"Blob":       KindBlob,
	"String":     KindString,
	"Timestamp":  KindTimestamp,
	"Document":   KindDocument,
}

type modelDoc struct {
	Namespace string              `yaml:"namespace"`
	Shapes    map[string]shapeDoc `yaml:"shapes"`
}

type shapeDoc struct {
	Type    string               `yaml:"type"`
	Member  *memberDoc           `yaml:"member"`
	Key     *memberDoc           `yaml:"key"`
	Value   *memberDoc           `yaml:"value"`
	Members map[string]memberDoc `yaml:"members"`
	Traits  map[string]yaml.Node `yaml:"traits"`
}

type memberDoc struct {
	Target string               `yaml:"target"`
	Traits map[string]yaml.Node `yaml:"traits"`
}

// LoadYAML parses a model document into a Model. Shape and member names are
// inserted in sorted order so a document always loads to the same model
// regardless of map iteration. The prelude shapes are registered first.
func LoadYAML(data []byte) (*Model, error) {
	var doc modelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse model document: %w", err)
	}
	if doc.Namespace == "" {
		return nil, fmt.Errorf("model document missing namespace")
	}

	m := NewModel()
	addPrelude(m)

	names := make([]string, 0, len(doc.Shapes))
	for name := range doc.Shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		shape, err := buildShape(doc.Namespace, name, doc.Shapes[name])
		if err != nil {
			return nil, fmt.Errorf("shape %s#%s: %w", doc.Namespace, name, err)
		}
		m.Add(shape)
	}

	return m, nil
}

// LoadYAMLFile reads and parses a model document from disk.
func LoadYAMLFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}
	m, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func addPrelude(m *Model) {
	names := make([]string, 0, len(preludeKinds))
	for name := range preludeKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		m.Add(&Shape{
			ID:     ShapeID{Namespace: PreludeNamespace, Name: name},
			Kind:   preludeKinds[name],
			Traits: TraitSet{},
		})
	}
}

func buildShape(namespace, name string, doc shapeDoc) (*Shape, error) {
	kind, err := ParseShapeKind(doc.Type)
	if err != nil {
		return nil, err
	}

	shape := &Shape{
		ID:     ShapeID{Namespace: namespace, Name: name},
		Kind:   kind,
		Traits: TraitSet{},
	}
	if err := decodeTraits(doc.Traits, shape.Traits); err != nil {
		return nil, err
	}

	switch kind {
	case KindList, KindSet:
		if doc.Member == nil {
			return nil, fmt.Errorf("%s shape requires a member target", kind)
		}
		elem, err := buildMember(namespace, ElementMemberName, *doc.Member)
		if err != nil {
			return nil, err
		}
		shape.Members = append(shape.Members, elem)
	case KindMap:
		if doc.Key == nil || doc.Value == nil {
			return nil, fmt.Errorf("map shape requires key and value targets")
		}
		key, err := buildMember(namespace, KeyMemberName, *doc.Key)
		if err != nil {
			return nil, err
		}
		value, err := buildMember(namespace, ValueMemberName, *doc.Value)
		if err != nil {
			return nil, err
		}
		shape.Members = append(shape.Members, key, value)
	case KindStructure, KindUnion, KindEnum, KindOperation, KindResource, KindService:
		memberNames := make([]string, 0, len(doc.Members))
		for mn := range doc.Members {
			memberNames = append(memberNames, mn)
		}
		sort.Strings(memberNames)
		for _, mn := range memberNames {
			member, err := buildMember(namespace, mn, doc.Members[mn])
			if err != nil {
				return nil, err
			}
			shape.Members = append(shape.Members, member)
		}
	case KindBoolean, KindByte, KindShort, KindInteger, KindLong,
		KindFloat, KindDouble, KindBigInteger, KindBigDecimal,
		KindBlob, KindString, KindTimestamp, KindDocument:
		// Leaf declarations carry traits only.
	case KindMember:
		return nil, fmt.Errorf("member shapes cannot be declared at top level")
	default:
		return nil, &UnsupportedShapeError{ID: shape.ID, Kind: kind}
	}

	return shape, nil
}

func buildMember(namespace, name string, doc memberDoc) (*Member, error) {
	target := doc.Target
	if target == "" {
		// Enum members omit the target; they are string-valued.
		target = PreludeNamespace + "#String"
	}
	id, err := resolveTarget(namespace, target)
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", name, err)
	}

	member := &Member{Name: name, Target: id, Traits: TraitSet{}}
	if err := decodeTraits(doc.Traits, member.Traits); err != nil {
		return nil, fmt.Errorf("member %s: %w", name, err)
	}
	return member, nil
}

// resolveTarget resolves a possibly-relative target reference against the
// document namespace.
func resolveTarget(namespace, target string) (ShapeID, error) {
	for i := 0; i < len(target); i++ {
		if target[i] == '#' {
			return ParseShapeID(target)
		}
	}
	if _, ok := preludeKinds[target]; ok {
		return ShapeID{Namespace: PreludeNamespace, Name: target}, nil
	}
	return ShapeID{Namespace: namespace, Name: target}, nil
}

func decodeTraits(docs map[string]yaml.Node, out TraitSet) error {
	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		node := docs[key]
		tr, err := decodeTrait(key, node)
		if err != nil {
			return err
		}
		out.Set(tr)
	}
	return nil
}

func decodeTrait(key string, node yaml.Node) (Trait, error) {
	switch key {
	case "documentation":
		var v string
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("documentation trait: %w", err)
		}
		return DocumentationTrait{Value: v}, nil
	case "required":
		return RequiredTrait{}, nil
	case "sensitive":
		return SensitiveTrait{}, nil
	case "enumValue":
		var v string
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("enumValue trait: %w", err)
		}
		return EnumValueTrait{Value: v}, nil
	case "error":
		var v string
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("error trait: %w", err)
		}
		return ErrorTrait{Fault: v}, nil
	case "default":
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("default trait: %w", err)
		}
		return DefaultTrait{Value: v}, nil
	case "deprecated":
		var v string
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("deprecated trait: %w", err)
		}
		return DeprecatedTrait{Message: v}, nil
	default:
		return nil, fmt.Errorf("unknown trait %q", key)
	}
}
