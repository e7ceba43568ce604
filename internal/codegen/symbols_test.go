package codegen

import (
	"testing"

	"github.com/loomlang/loom/internal/model"
)

func newShape(id string, kind model.ShapeKind) *model.Shape {
	return &model.Shape{
		ID:     model.MustParseShapeID(id),
		Kind:   kind,
		Traits: model.TraitSet{},
	}
}

func TestSymbolTableAssignIsIdempotent(t *testing.T) {
	table := NewSymbolTable("example.com/gen/weather")
	city := newShape("ns#City", model.KindStructure)

	first := table.AssignReference(city, "City")
	second := table.AssignReference(city, "City")

	if first != second {
		t.Errorf("re-assignment drifted: %v then %v", first, second)
	}
}

func TestSymbolTableDistinctShapesNeverCollide(t *testing.T) {
	table := NewSymbolTable("example.com/gen/weather")

	a := table.AssignValue(newShape("one#City", model.KindStructure), "City")
	b := table.AssignValue(newShape("two#City", model.KindStructure), "City")

	if a.Namespace == b.Namespace && a.Name == b.Name {
		t.Errorf("distinct shapes share identity %s.%s", a.Namespace, a.Name)
	}
	if b.Name != "City2" {
		t.Errorf("second assignment = %q, want deterministic City2", b.Name)
	}
}

func TestSymbolTableLookup(t *testing.T) {
	table := NewSymbolTable("ns")
	city := newShape("ns#City", model.KindStructure)
	assigned := table.AssignReference(city, "City")

	got, ok := table.Lookup(city.ID)
	if !ok || got != assigned {
		t.Errorf("Lookup = %v/%v, want %v", got, ok, assigned)
	}
	if _, ok := table.Lookup(model.MustParseShapeID("ns#Missing")); ok {
		t.Error("Lookup of unassigned shape reported success")
	}
}

func TestUniverseSymbols(t *testing.T) {
	tests := []struct {
		name      string
		wantName  string
		wantNS    string
		reference bool
	}{
		{"String", "string", "", false},
		{"Boolean", "bool", "", false},
		{"Integer", "int32", "", false},
		{"Long", "int64", "", false},
		{"Blob", "[]byte", "", false},
		{"Timestamp", "Time", "time", false},
		{"BigInteger", "Int", "math/big", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, ok := UniverseSymbol(tt.name)
			if !ok {
				t.Fatalf("UniverseSymbol(%q) missing", tt.name)
			}
			if sym.Name != tt.wantName || sym.Namespace != tt.wantNS || sym.Reference != tt.reference {
				t.Errorf("UniverseSymbol(%q) = %+v", tt.name, sym)
			}
		})
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		input    string
		exported bool
		want     string
	}{
		{"city", true, "City"},
		{"city_name", true, "CityName"},
		{"city_id", true, "CityID"},
		{"api_url", true, "APIURL"},
		{"cityName", true, "CityName"},
		{"name", false, "name"},
		{"city_name", false, "cityName"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GoName(tt.input, tt.exported); got != tt.want {
				t.Errorf("GoName(%q, %v) = %q, want %q", tt.input, tt.exported, got, tt.want)
			}
		})
	}
}

func TestSymbolExported(t *testing.T) {
	if !(Symbol{Name: "City"}).Exported() {
		t.Error("City should be exported")
	}
	if (Symbol{Name: "city"}).Exported() {
		t.Error("city should not be exported")
	}
	if (Symbol{}).Exported() {
		t.Error("empty symbol should not be exported")
	}
}
