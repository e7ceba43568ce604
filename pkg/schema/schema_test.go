package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndMember(t *testing.T) {
	s := New(KindStructure, "example.weather#City")
	assert.Equal(t, KindStructure, s.Kind)
	assert.Equal(t, "example.weather#City", s.ID)

	name := s.Member("name", "loom.api#String", RequiredTrait{})
	population := s.Member("population", "loom.api#Long")

	require.Len(t, s.Members(), 2)
	assert.Same(t, s, name.Parent)
	assert.Equal(t, "name", name.Name)
	assert.Equal(t, "loom.api#String", name.Target)
	assert.Equal(t, "population", population.Name)
	assert.Equal(t, "loom.api#Long", population.Target)
}

func TestAttach(t *testing.T) {
	s := New(KindList, "example.weather#Names")
	Attach(s, SensitiveTrait{})

	tr, ok := s.GetTrait(TraitIDSensitive)
	require.True(t, ok)
	assert.Equal(t, SensitiveTrait{}, tr)
}

func TestGetTrait(t *testing.T) {
	s := New(KindString, "ns#Token", SensitiveTrait{}, DocumentationTrait{Value: "An opaque token."})

	doc, ok := s.GetTrait(TraitIDDocumentation)
	require.True(t, ok)
	assert.Equal(t, "An opaque token.", doc.(DocumentationTrait).Value)

	_, ok = s.GetTrait(TraitIDDeprecated)
	assert.False(t, ok)
}

func TestMemberGetTrait(t *testing.T) {
	s := New(KindStructure, "ns#City")
	m := s.Member("name", "loom.api#String", RequiredTrait{}, DocumentationTrait{Value: "The name."})

	_, ok := m.GetTrait(TraitIDRequired)
	assert.True(t, ok)
	_, ok = m.GetTrait(TraitIDSensitive)
	assert.False(t, ok)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindList, "KindList"},
		{KindStructure, "KindStructure"},
		{KindString, "KindString"},
		{Kind(99), "KindUnknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}
