// Package scoring implements the inspection scoring engine: the health
// index calculator, the failure categorizer, the result classifier, and
// the recommendation generator.
//
// Every component is a deterministic function of a stable checklist
// snapshot and the injected weight registry. There is no shared mutable
// state and no I/O, so distinct checklists can be scored in parallel
// without coordination. Serializing technician edits against scoring for
// a single checklist is the caller's responsibility.
package scoring

import (
	"log/slog"

	"github.com/DukeRupert/roadworthy/internal/domain"
	"github.com/DukeRupert/roadworthy/internal/registry"
)

// Engine evaluates checklists against one registered checklist version.
type Engine struct {
	registry *registry.Registry
	logger   *slog.Logger
}

// New creates a scoring engine for a checklist version.
func New(reg *registry.Registry, logger *slog.Logger) *Engine {
	return &Engine{
		registry: reg,
		logger:   logger,
	}
}

// Registry returns the weight registry this engine scores against.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// checkVersion guards against mixing a checklist with the wrong weight
// table. Weight assignment must never silently cross checklist versions.
func (e *Engine) checkVersion(op string, c *domain.Checklist) error {
	if c.Version != e.registry.Version() {
		return domain.Errorf(domain.EINVALID, op,
			"checklist version %q does not match registry version %q", c.Version, e.registry.Version())
	}
	return nil
}
