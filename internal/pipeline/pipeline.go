// Package pipeline runs one full generation pass: collect descriptors,
// generate category fragments, aggregate, validate, synthesize variants,
// render, and write both artifacts. Single-threaded and stateless between
// invocations; any fatal failure aborts before either artifact is written.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/reskit/reskit/internal/cli/config"
	"github.com/reskit/reskit/internal/emitter"
	"github.com/reskit/reskit/internal/generator"
	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
	"github.com/reskit/reskit/internal/validator"
	"github.com/reskit/reskit/internal/variants"
	"github.com/reskit/reskit/internal/writer"
)

// Pipeline wires one configuration to one collector.
type Pipeline struct {
	cfg       *config.Config
	collector resource.Collector
	logger    *zap.Logger
}

// Outcome summarizes one run. Warnings never abort a run; they are returned
// for presentation by the caller.
type Outcome struct {
	Wrote     bool
	TestWrote bool
	Warnings  []string
}

// New creates a pipeline. A nil logger disables tracing.
func New(cfg *config.Config, collector resource.Collector, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, collector: collector, logger: logger}
}

// Run executes one full pass. Both artifacts are rendered before the first
// write so a rendering failure can never leave partially updated sources on
// disk.
func (p *Pipeline) Run() (*Outcome, error) {
	set, err := p.collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("resource collection failed: %w", err)
	}
	warnings := append([]string(nil), set.Warnings...)
	p.logger.Debug("collected descriptors",
		zap.Int("images", len(set.Images)),
		zap.Int("strings", len(set.Strings)),
		zap.Int("warnings", len(set.Warnings)))

	cats, err := p.cfg.EnabledCategories()
	if err != nil {
		return nil, err
	}
	fragments := make([]*tree.Node, 0, len(cats))
	for _, g := range generator.ForCategories(cats) {
		fragments = append(fragments, g.Fragment(set))
	}
	root := tree.Aggregate(fragments)
	p.logger.Debug("aggregated fragments", zap.Int("fragments", len(fragments)))

	access, err := validator.ParseAccess(p.cfg.Access)
	if err != nil {
		return nil, err
	}
	validated := validator.Validate(root, validator.Options{Access: access})
	warnings = append(warnings, validated.Warnings...)
	p.logger.Debug("validated tree", zap.Int("collisions", len(validated.Warnings)))

	synth, synthWarnings := variants.Synthesize(validated.Public, variants.Config{Tags: p.cfg.VariantTags})
	warnings = append(warnings, synthWarnings...)

	doc := emitter.Document{
		Package:  p.cfg.Package,
		Synth:    synth,
		Public:   validated.Public,
		Internal: validated.Internal,
	}
	primary := emitter.New().Render(doc)
	var reduced string
	if p.cfg.TestOutput != "" {
		reduced = emitter.New().RenderReduced(doc, cats)
	}

	out := &Outcome{Warnings: warnings}
	out.Wrote, err = writer.Write(p.cfg.Output, []byte(primary))
	if err != nil {
		return nil, err
	}
	p.logger.Debug("primary artifact", zap.String("path", p.cfg.Output), zap.Bool("wrote", out.Wrote))

	if p.cfg.TestOutput != "" {
		out.TestWrote, err = writer.Write(p.cfg.TestOutput, []byte(reduced))
		if err != nil {
			return nil, err
		}
		p.logger.Debug("reduced artifact", zap.String("path", p.cfg.TestOutput), zap.Bool("wrote", out.TestWrote))
	}
	return out, nil
}
