package codegen

import "strings"

// generatedHeader is written at the top of every finalized unit.
const generatedHeader = "// Code generated by loom. DO NOT EDIT."

// Delegator routes generated fragments to output units: one unit per target
// type, plus optional companion test units. It is the sole owner of the
// unit map; no other component holds a reference into it. Independently
// requested writes to the same unit are separated by exactly one blank
// line.
type Delegator struct {
	// namespace is the import path of the generated package. A unit created
	// from a symbol with an empty namespace is assigned this namespace.
	namespace string
	// pkg is the package clause name of the generated package.
	pkg string

	order []string
	units map[string]*outputUnit
}

type outputUnit struct {
	path   string
	pkg    string
	writer *Writer
}

// NewDelegator creates a delegator for one generation pass. Both inputs are
// mandatory.
func NewDelegator(namespace, pkg string) (*Delegator, error) {
	if namespace == "" {
		return nil, &MissingStateError{Component: "delegator", Field: "a target namespace"}
	}
	if pkg == "" {
		return nil, &MissingStateError{Component: "delegator", Field: "a package name"}
	}
	return &Delegator{
		namespace: namespace,
		pkg:       pkg,
		units:     make(map[string]*outputUnit),
	}, nil
}

// UseShapeWriter invokes fn against the output unit owned by the shape's
// symbol.
func (d *Delegator) UseShapeWriter(sym Symbol, fn func(*Writer) error) error {
	return d.useUnit(shapeFileName(sym), d.pkg, fn)
}

// UseShapeTestWriter routes to the shape's companion test unit, which is
// compiled in the same package.
func (d *Delegator) UseShapeTestWriter(sym Symbol, fn func(*Writer) error) error {
	return d.useUnit(testFileName(shapeFileName(sym)), d.pkg, fn)
}

// UseShapeExportedTestWriter routes to a black-box test unit compiled in
// the external test package, so the test consumes only the unit's public
// surface.
func (d *Delegator) UseShapeExportedTestWriter(sym Symbol, fn func(*Writer) error) error {
	return d.useUnit(testFileName(shapeFileName(sym)), d.pkg+"_test", fn)
}

// UseFileWriter routes to an explicitly named unit.
func (d *Delegator) UseFileWriter(path, pkg string, fn func(*Writer) error) error {
	return d.useUnit(path, pkg, fn)
}

func (d *Delegator) useUnit(path, pkg string, fn func(*Writer) error) error {
	unit, ok := d.units[path]
	if !ok {
		unit = &outputUnit{path: path, pkg: pkg, writer: NewWriter(d.namespace)}
		d.units[path] = unit
		d.order = append(d.order, path)
	}

	if unit.writer.Len() > 0 {
		unit.writer.Writef("")
	}
	if err := fn(unit.writer); err != nil {
		return err
	}
	return unit.writer.Err()
}

// Flush finalizes every unit in creation order, rendering header, package
// clause, import block, and body to the manifest, then clears all in-memory
// state. A flushed pass is over; the next useUnit call starts a fresh one.
func (d *Delegator) Flush(m Manifest) error {
	for _, path := range d.order {
		unit := d.units[path]
		if err := unit.writer.Err(); err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(generatedHeader)
		b.WriteString("\n\npackage ")
		b.WriteString(unit.pkg)
		b.WriteString("\n\n")
		if block := unit.writer.Imports().Render(); block != "" {
			b.WriteString(block)
			b.WriteString("\n")
		}
		b.WriteString(unit.writer.String())

		if err := m.WriteFile(unit.path, b.String()); err != nil {
			return err
		}
	}

	d.order = nil
	d.units = make(map[string]*outputUnit)
	return nil
}

// shapeFileName derives the unit path for a shape symbol.
func shapeFileName(sym Symbol) string {
	return strings.ToLower(sym.Name) + ".go"
}

// testFileName inserts the test marker before the file extension.
func testFileName(path string) string {
	if idx := strings.LastIndex(path, "."); idx >= 0 {
		return path[:idx] + "_test" + path[idx:]
	}
	return path + "_test"
}
