package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// ImportContainer accumulates the external packages one output unit
// references. It is the single collision-detection authority: the symbol
// table may hand out symbols freely, but any use of a symbol from another
// namespace flows through here, which enforces that no two different
// packages claim the same short name in one file.
type ImportContainer struct {
	// namespace is the owning unit's own package path; importing it is a
	// no-op.
	namespace string
	// imports maps alias to import path.
	imports map[string]string
}

// NewImportContainer creates a container for a unit compiled in the given
// package path.
func NewImportContainer(namespace string) *ImportContainer {
	return &ImportContainer{
		namespace: namespace,
		imports:   make(map[string]string),
	}
}

// Add records an import under the requested alias. An empty alias takes the
// default alias derived from the last path segment. Blank paths and the
// unit's own namespace are no-ops; repeated identical bindings are no-ops;
// a wildcard alias or an alias already bound to a different path is a hard
// collision fault.
func (c *ImportContainer) Add(importPath, alias string) error {
	if importPath == "" || importPath == c.namespace {
		return nil
	}
	if alias == "" {
		alias = DefaultAlias(importPath)
	}
	if alias == "." {
		return &CollisionError{Alias: ".", Requested: importPath}
	}

	if existing, ok := c.imports[alias]; ok {
		if existing == importPath {
			return nil
		}
		return &CollisionError{Alias: alias, Existing: existing, Requested: importPath}
	}

	c.imports[alias] = importPath
	return nil
}

// AddSymbol records the import a symbol use requires.
func (c *ImportContainer) AddSymbol(sym Symbol) error {
	if sym.Namespace == "" {
		return nil
	}
	return c.Add(sym.Namespace, "")
}

// AddAll merges another container's entries under the same collision rules.
func (c *ImportContainer) AddAll(other *ImportContainer) error {
	aliases := make([]string, 0, len(other.imports))
	for alias := range other.imports {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		if err := c.Add(other.imports[alias], alias); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of recorded imports.
func (c *ImportContainer) Len() int {
	return len(c.imports)
}

// Render produces the import declaration block, one import per line sorted
// by alias. The alias is omitted when it equals the default derived alias.
// An empty container renders as empty text.
func (c *ImportContainer) Render() string {
	if len(c.imports) == 0 {
		return ""
	}

	aliases := make([]string, 0, len(c.imports))
	for alias := range c.imports {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, alias := range aliases {
		path := c.imports[alias]
		if alias == DefaultAlias(path) {
			fmt.Fprintf(&b, "\t%q\n", path)
		} else {
			fmt.Fprintf(&b, "\t%s %q\n", alias, path)
		}
	}
	b.WriteString(")\n")
	return b.String()
}

// DefaultAlias derives the implicit alias for an import path: its last
// segment.
func DefaultAlias(importPath string) string {
	if idx := strings.LastIndex(importPath, "/"); idx >= 0 {
		return importPath[idx+1:]
	}
	return importPath
}
