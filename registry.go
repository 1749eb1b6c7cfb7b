package sods

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Registry interns styles and borders for a document writer. Equal values
// share one automatic name, so every cell formatted the same way points at a
// single style definition.
//
// Registry is safe for concurrent use.
type Registry struct {
	log *zap.Logger

	mu          sync.Mutex
	styles      map[int][]namedStyle
	styleNames  []string
	styleByName map[string]*Style

	borders      map[int][]namedBorder
	borderNames  []string
	borderByName map[string]*Border
}

type namedStyle struct {
	name  string
	style *Style
}

type namedBorder struct {
	name   string
	border *Border
}

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	return &Registry{
		log:          log.Named("registry"),
		styles:       make(map[int][]namedStyle),
		styleByName:  make(map[string]*Style),
		borders:      make(map[int][]namedBorder),
		borderByName: make(map[string]*Border),
	}
}

// AddStyle returns the automatic name ("ce1", "ce2", ...) for s, registering
// a private copy the first time an equal style is seen. Default styles are
// not registered and yield "".
func (r *Registry) AddStyle(s *Style) string {
	if s == nil || s.IsDefault() {
		return ""
	}

	h := s.Hash()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ns := range r.styles[h] {
		if ns.style.Equal(s) {
			return ns.name
		}
	}

	name := fmt.Sprintf("ce%d", len(r.styleNames)+1)
	c := s.Clone()
	r.styles[h] = append(r.styles[h], namedStyle{name: name, style: c})
	r.styleNames = append(r.styleNames, name)
	r.styleByName[name] = c

	r.log.Debug("Registered style", zap.String("name", name), zap.Int("hash", h), zap.Stringer("css", c))

	return name
}

// AddBorder returns the automatic name ("bd1", "bd2", ...) for b.
func (r *Registry) AddBorder(b *Border) string {
	if b == nil {
		return ""
	}

	h := b.Hash()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, nb := range r.borders[h] {
		if nb.border.Equal(b) {
			return nb.name
		}
	}

	name := fmt.Sprintf("bd%d", len(r.borderNames)+1)
	c := b.Clone()
	r.borders[h] = append(r.borders[h], namedBorder{name: name, border: c})
	r.borderNames = append(r.borderNames, name)
	r.borderByName[name] = c

	r.log.Debug("Registered border", zap.String("name", name), zap.Stringer("border", c), zap.Bool("full", c.IsFull()))

	return name
}

// Style returns a copy of the registered style.
func (r *Registry) Style(name string) (*Style, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.styleByName[name]
	if !ok {
		return nil, false
	}

	return s.Clone(), true
}

// Border returns a copy of the registered border.
func (r *Registry) Border(name string) (*Border, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.borderByName[name]
	if !ok {
		return nil, false
	}

	return b.Clone(), true
}

// Styles returns the style names in registration order.
func (r *Registry) Styles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.styleNames...)
}

// Borders returns the border names in registration order.
func (r *Registry) Borders() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.borderNames...)
}
