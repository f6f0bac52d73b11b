// Package shadow accumulates decoded symbols into per-resource-type groups,
// the in-memory form of a generated R2 class.
package shadow

import (
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/restype"
	"github.com/teranos/r2gen/symtab"
)

// Group is one nested holder of the generated class.
type Group struct {
	Type    restype.Type    `json:"type" yaml:"type" toml:"type"`
	Symbols []symtab.Symbol `json:"symbols" yaml:"symbols" toml:"symbols"`
}

// Class groups symbols by resource type, keeping insertion order within
// each type. A Class belongs to a single generation and is not safe for
// concurrent use.
type Class struct {
	groups [restype.Count][]symtab.Symbol
	size   int
	frozen bool
}

// New returns an empty Class.
func New() *Class {
	return &Class{}
}

// Add appends sym to the group of its type. Symbols whose type is outside
// the Registry are dropped. Adding after Groups has been called panics with
// an assertion failure.
func (c *Class) Add(sym symtab.Symbol) {
	if c.frozen {
		panic(errors.AssertionFailedf("shadow: Add(%s.%s) after Groups", sym.Type, sym.Name))
	}
	if !sym.Type.Valid() {
		return
	}
	c.groups[sym.Type] = append(c.groups[sym.Type], sym)
	c.size++
}

// Groups returns the non-empty groups in Registry order and freezes the
// Class. The returned slices must not be modified.
func (c *Class) Groups() []Group {
	c.frozen = true

	var out []Group
	for _, t := range restype.All() {
		if syms := c.groups[t]; len(syms) > 0 {
			out = append(out, Group{Type: t, Symbols: syms})
		}
	}
	return out
}

// Len is the number of symbols accumulated.
func (c *Class) Len() int {
	return c.size
}

// Empty reports whether no symbol has been added.
func (c *Class) Empty() bool {
	return c.size == 0
}
