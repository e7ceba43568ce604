package codegen

import (
	"os"
	"path/filepath"
	"sort"
)

// Manifest is the file-write collaborator finalized units are handed to.
type Manifest interface {
	// WriteFile records the final text of one generated file.
	WriteFile(path string, content string) error
}

// DirManifest writes generated files under a root directory, creating
// parent directories as needed.
type DirManifest struct {
	Root string
}

func (m *DirManifest) WriteFile(path string, content string) error {
	full := filepath.Join(m.Root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(content), 0o644)
}

// MemoryManifest collects generated files in memory. Used in tests and for
// dry runs.
type MemoryManifest struct {
	Files map[string]string
}

func NewMemoryManifest() *MemoryManifest {
	return &MemoryManifest{Files: make(map[string]string)}
}

func (m *MemoryManifest) WriteFile(path string, content string) error {
	m.Files[path] = content
	return nil
}

// Paths returns the written file paths in sorted order.
func (m *MemoryManifest) Paths() []string {
	paths := make([]string, 0, len(m.Files))
	for p := range m.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
