package codegen

import (
	"bytes"
	"fmt"
)

// Writer accumulates generated Go source for one output unit. Symbol
// references flow through the writer so the unit's import container sees
// every external package the body uses. Import faults are sticky and
// surface when the fragment finishes, aborting the pass before anything is
// flushed.
type Writer struct {
	buf       bytes.Buffer
	indentLvl int
	imports   *ImportContainer
	namespace string
	err       error
}

// NewWriter creates a writer for a unit compiled in the given package path.
func NewWriter(namespace string) *Writer {
	return &Writer{
		imports:   NewImportContainer(namespace),
		namespace: namespace,
	}
}

// Writef writes one line at the current indentation.
func (w *Writer) Writef(format string, args ...any) {
	if format == "" {
		w.buf.WriteString("\n")
		return
	}
	for i := 0; i < w.indentLvl; i++ {
		w.buf.WriteString("\t")
	}
	if len(args) > 0 {
		fmt.Fprintf(&w.buf, format, args...)
	} else {
		w.buf.WriteString(format)
	}
	w.buf.WriteString("\n")
}

// OpenBlock writes a line and increases indentation, pairing with
// CloseBlock.
func (w *Writer) OpenBlock(format string, args ...any) {
	w.Writef(format, args...)
	w.indentLvl++
}

// CloseBlock decreases indentation and writes the closing line.
func (w *Writer) CloseBlock(format string, args ...any) {
	w.indentLvl--
	w.Writef(format, args...)
}

// Use records an import the body depends on without referencing a symbol.
func (w *Writer) Use(importPath, alias string) {
	if err := w.imports.Add(importPath, alias); err != nil && w.err == nil {
		w.err = err
	}
}

// SymbolRef returns the qualified reference for a symbol at a use site in
// this unit, recording the import it requires.
func (w *Writer) SymbolRef(sym Symbol) string {
	if sym.Namespace == "" || sym.Namespace == w.namespace {
		return sym.Name
	}
	if err := w.imports.AddSymbol(sym); err != nil && w.err == nil {
		w.err = err
	}
	return DefaultAlias(sym.Namespace) + "." + sym.Name
}

// TypeRef is SymbolRef with the reference-semantics pointer prefix applied.
func (w *Writer) TypeRef(sym Symbol) string {
	ref := w.SymbolRef(sym)
	if sym.Reference {
		return "*" + ref
	}
	return ref
}

// Err returns the first import fault the body raised, if any.
func (w *Writer) Err() error {
	return w.err
}

// Imports exposes the unit's import container.
func (w *Writer) Imports() *ImportContainer {
	return w.imports
}

// Len returns the number of body bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// String returns the accumulated body text.
func (w *Writer) String() string {
	return w.buf.String()
}
