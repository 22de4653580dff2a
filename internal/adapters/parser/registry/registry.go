package registry

import "github.com/Giang-Dang/parallel-corpus-tool/internal/ports"

type Registry struct {
	byFormat map[string]ports.Parser
}

func New() *Registry { return &Registry{byFormat: map[string]ports.Parser{}} }

func (r *Registry) Register(p ports.Parser) { r.byFormat[p.Format()] = p }

func (r *Registry) Get(format string) (ports.Parser, bool) {
	p, ok := r.byFormat[format]
	return p, ok
}

// GetLine returns the registered parser for a format when it supports
// line-at-a-time parsing, which the batched ingestion pipeline requires.
func (r *Registry) GetLine(format string) (ports.LineParser, bool) {
	p, ok := r.byFormat[format]
	if !ok {
		return nil, false
	}
	lp, ok := p.(ports.LineParser)
	return lp, ok
}
