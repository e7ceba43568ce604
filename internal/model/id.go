package model

import (
	"fmt"
	"strings"
)

// ShapeID uniquely identifies a shape in the model. It is rendered as
// "namespace#Name" for top-level shapes and "namespace#Name$member" for
// member shapes.
type ShapeID struct {
	Namespace string
	Name      string
	Member    string
}

// ParseShapeID parses an absolute shape identifier of the form
// "namespace#Name" or "namespace#Name$member".
func ParseShapeID(s string) (ShapeID, error) {
	hash := strings.Index(s, "#")
	if hash <= 0 || hash == len(s)-1 {
		return ShapeID{}, fmt.Errorf("invalid shape id %q: expected namespace#Name", s)
	}

	id := ShapeID{Namespace: s[:hash]}
	rest := s[hash+1:]

	if dollar := strings.Index(rest, "$"); dollar >= 0 {
		if dollar == 0 || dollar == len(rest)-1 {
			return ShapeID{}, fmt.Errorf("invalid shape id %q: empty name or member", s)
		}
		id.Name = rest[:dollar]
		id.Member = rest[dollar+1:]
	} else {
		id.Name = rest
	}

	return id, nil
}

// MustParseShapeID is like ParseShapeID but panics on malformed input.
// Intended for tests and static tables.
func MustParseShapeID(s string) ShapeID {
	id, err := ParseShapeID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String renders the identifier in its absolute form.
func (id ShapeID) String() string {
	if id.Member != "" {
		return id.Namespace + "#" + id.Name + "$" + id.Member
	}
	return id.Namespace + "#" + id.Name
}

// WithMember derives a member identifier from a container identifier.
func (id ShapeID) WithMember(name string) ShapeID {
	return ShapeID{Namespace: id.Namespace, Name: id.Name, Member: name}
}

// WithoutMember returns the container identifier for a member identifier.
func (id ShapeID) WithoutMember() ShapeID {
	return ShapeID{Namespace: id.Namespace, Name: id.Name}
}

// IsMember reports whether the identifier names a member shape.
func (id ShapeID) IsMember() bool {
	return id.Member != ""
}

// IsZero reports whether the identifier is unset.
func (id ShapeID) IsZero() bool {
	return id == ShapeID{}
}
