package sods

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// CSSProperties is an insertion-ordered set of CSS declarations.
type CSSProperties struct {
	m *orderedmap.OrderedMap[string, string]
}

func newCSSProperties() *CSSProperties {
	return &CSSProperties{m: orderedmap.NewOrderedMap[string, string]()}
}

func (p *CSSProperties) set(key, value string) {
	p.m.Set(key, value)
}

// Len returns the number of declarations.
func (p *CSSProperties) Len() int {
	return p.m.Len()
}

// Get returns the value of a property.
func (p *CSSProperties) Get(key string) (string, bool) {
	return p.m.Get(key)
}

// Keys returns the property names in order.
func (p *CSSProperties) Keys() []string {
	keys := make([]string, 0, p.m.Len())
	for el := p.m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}

	return keys
}

// Each calls fn for every declaration in order.
func (p *CSSProperties) Each(fn func(key, value string)) {
	for el := p.m.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Render joins the declarations as "<prefix><key>: <value>;\n" lines.
func (p *CSSProperties) Render(prefix string) string {
	var b strings.Builder
	p.Each(func(key, value string) {
		b.WriteString(prefix)
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString(";\n")
	})

	return b.String()
}
