package model

import "testing"

func TestParseShapeID(t *testing.T) {
	tests := []struct {
		input   string
		want    ShapeID
		wantErr bool
	}{
		{"example.weather#City", ShapeID{Namespace: "example.weather", Name: "City"}, false},
		{"example.weather#City$name", ShapeID{Namespace: "example.weather", Name: "City", Member: "name"}, false},
		{"loom.api#String", ShapeID{Namespace: "loom.api", Name: "String"}, false},
		{"NoNamespace", ShapeID{}, true},
		{"#City", ShapeID{}, true},
		{"ns#", ShapeID{}, true},
		{"ns#City$", ShapeID{}, true},
		{"ns#$member", ShapeID{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseShapeID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShapeID(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShapeID(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseShapeID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShapeIDString_RoundTrip(t *testing.T) {
	inputs := []string{
		"example.weather#City",
		"example.weather#City$name",
	}
	for _, in := range inputs {
		id := MustParseShapeID(in)
		if id.String() != in {
			t.Errorf("round trip of %q produced %q", in, id.String())
		}
	}
}

func TestShapeIDWithMember(t *testing.T) {
	parent := MustParseShapeID("ns#Foo")
	member := parent.WithMember("a")

	if member.String() != "ns#Foo$a" {
		t.Errorf("WithMember = %s, want ns#Foo$a", member)
	}
	if !member.IsMember() {
		t.Error("IsMember() = false for member id")
	}
	if member.WithoutMember() != parent {
		t.Errorf("WithoutMember() = %v, want %v", member.WithoutMember(), parent)
	}
}
