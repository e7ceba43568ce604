package codegen

import "fmt"

// Generator fault codes. Every fault is fatal to the whole generation pass;
// nothing is flushed once one is raised.
const (
	// CodeImportCollision indicates two namespaces claiming one alias, or a
	// wildcard import request.
	CodeImportCollision = "GEN610"
	// CodeMissingState indicates a component invoked without a mandatory
	// input.
	CodeMissingState = "GEN611"
)

// CollisionError reports an import alias conflict inside one output unit.
type CollisionError struct {
	// Alias is the short name under dispute.
	Alias string
	// Existing is the import path the alias is already bound to. Empty for
	// wildcard rejections.
	Existing string
	// Requested is the import path the caller tried to bind.
	Requested string
}

func (e *CollisionError) Error() string {
	if e.Alias == "." {
		return fmt.Sprintf("%s: wildcard import of %q is forbidden", CodeImportCollision, e.Requested)
	}
	return fmt.Sprintf("%s: import name collision: alias %q already bound to %q, requested for %q",
		CodeImportCollision, e.Alias, e.Existing, e.Requested)
}

// MissingStateError reports a component constructed or invoked without a
// mandatory input. Raised eagerly, never deferred into generation.
type MissingStateError struct {
	// Component names the component at fault.
	Component string
	// Field names the missing input.
	Field string
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf("%s: %s requires %s", CodeMissingState, e.Component, e.Field)
}
