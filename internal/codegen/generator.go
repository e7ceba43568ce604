// Package codegen turns a loaded shape graph into generated Go source: a
// symbol for every shape, a Go type definition, a runtime schema
// descriptor, and per-kind decode logic, routed through per-type output
// units with collision-checked imports.
package codegen

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/loomlang/loom/internal/model"
)

// Config carries the mandatory generation targets.
type Config struct {
	// Namespace is the import path of the generated package.
	Namespace string
	// Package is the generated package's name.
	Package string
}

// Generator drives one generation pass over a model. A pass is
// single-threaded and synchronous: all text accumulates in memory and file
// I/O happens once, at flush, only if no fault was raised.
type Generator struct {
	model     *model.Model
	resolver  *SymbolResolver
	delegator *Delegator
	types     *TypeGenerator
	schemas   *SchemaGenerator
	desers    *DeserializerGenerator
	logger    *zap.Logger
}

// New creates a generator for one pass. Missing mandatory inputs fail here,
// never later inside generation.
func New(m *model.Model, cfg Config, logger *zap.Logger) (*Generator, error) {
	if m == nil {
		return nil, &MissingStateError{Component: "generator", Field: "a model"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	table := NewSymbolTable(cfg.Namespace)
	resolver, err := NewSymbolResolver(m, table)
	if err != nil {
		return nil, err
	}
	delegator, err := NewDelegator(cfg.Namespace, cfg.Package)
	if err != nil {
		return nil, err
	}
	types, err := NewTypeGenerator(resolver)
	if err != nil {
		return nil, err
	}
	schemas, err := NewSchemaGenerator(table)
	if err != nil {
		return nil, err
	}
	desers, err := NewDeserializerGenerator(resolver)
	if err != nil {
		return nil, err
	}

	return &Generator{
		model:     m,
		resolver:  resolver,
		delegator: delegator,
		types:     types,
		schemas:   schemas,
		desers:    desers,
		logger:    logger,
	}, nil
}

// Run generates every shape in the model and flushes the finished units to
// the manifest. Any fault aborts the pass before anything is written.
func (g *Generator) Run(manifest Manifest) error {
	passID := uuid.NewString()
	log := g.logger.With(zap.String("pass", passID))
	log.Info("starting generation pass", zap.Int("shapes", g.model.Len()))

	walker := model.NewWalker(g.model)
	for _, shape := range g.model.Shapes() {
		if shape.ID.Namespace == model.PreludeNamespace {
			continue
		}
		if err := walker.Walk(shape.ID, g.generateShape); err != nil {
			log.Error("generation pass failed", zap.Error(err))
			return err
		}
	}

	if err := g.delegator.Flush(manifest); err != nil {
		log.Error("flush failed", zap.Error(err))
		return err
	}
	log.Info("generation pass complete")
	return nil
}

// generateShape emits the type definition, schema descriptor, and decoder
// for one shape as separate fragments of the shape's output unit.
func (g *Generator) generateShape(shape *model.Shape) error {
	if shape.ID.Namespace == model.PreludeNamespace {
		return nil
	}

	sym, err := g.resolver.ResolveShape(shape)
	if err != nil {
		return err
	}
	if sym.Shape.IsZero() {
		// Universe-typed leaves have no generated surface of their own.
		return nil
	}

	g.logger.Debug("generating shape",
		zap.String("shape", shape.ID.String()),
		zap.String("kind", shape.Kind.String()),
		zap.String("symbol", sym.Name))

	if err := g.delegator.UseShapeWriter(sym, func(w *Writer) error {
		return g.types.GenerateShape(w, shape, sym)
	}); err != nil {
		return err
	}
	if err := g.delegator.UseShapeWriter(sym, func(w *Writer) error {
		return g.schemas.GenerateShape(w, shape, sym)
	}); err != nil {
		return err
	}
	if shape.Kind.IsAggregate() {
		if err := g.delegator.UseShapeWriter(sym, func(w *Writer) error {
			return g.desers.GenerateShape(w, shape, sym)
		}); err != nil {
			return err
		}
	}
	return nil
}
