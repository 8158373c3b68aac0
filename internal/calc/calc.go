// Package calc derives computed clinical fields from hand-entered ones:
// diagnosis age, the three survival endpoints, ICD site codes, lymph node
// aggregates, AJCC stage, and therapy flags. Each step only runs when the
// active schema declares the fields it needs, so the same engine serves
// every registered schema.
package calc

import (
	"io"
	"log/slog"

	"github.com/linyc74/cbioingest/internal/coerce"
	"github.com/linyc74/cbioingest/internal/schema"
)

// Engine derives computed fields for records of one schema.
type Engine struct {
	schema *schema.Schema
	sites  *SiteCodes
	logger *slog.Logger
}

// Config holds engine dependencies.
type Config struct {
	Schema *schema.Schema
	Sites  *SiteCodes   // defaults to the built-in site code tables
	Logger *slog.Logger // defaults to a discard logger
}

// New creates a calculation engine.
func New(cfg Config) *Engine {
	if cfg.Sites == nil {
		cfg.Sites = DefaultSiteCodes()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		schema: cfg.Schema,
		sites:  cfg.Sites,
		logger: cfg.Logger,
	}
}

// Process validates a record and runs every derivation step on a copy.
// The input record is never mutated. Running Process on its own output
// yields the same result.
func (e *Engine) Process(rec map[string]string) (map[string]string, error) {
	if err := e.schema.ValidateRecord(rec); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rec))
	for k, v := range rec {
		out[k] = v
	}

	steps := []func(map[string]string) error{
		e.diagnosisAge,
		e.survival,
		e.icd,
		e.lymphNodes,
		e.stage,
		e.therapyFlags,
		e.canonicalize,
	}
	for _, step := range steps {
		if err := step(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// canonicalize normalizes every value to its field's canonical text form.
// This is the last step so that derivation sees raw input and export sees
// clean output.
func (e *Engine) canonicalize(rec map[string]string) error {
	for name, val := range rec {
		f, ok := e.schema.Field(name)
		if !ok {
			continue
		}
		c, err := coerce.Canonical(f, val)
		if err != nil {
			return err
		}
		rec[name] = c
	}
	return nil
}
