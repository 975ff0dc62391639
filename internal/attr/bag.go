package attr

import (
	"iter"
	"slices"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders bags deterministically for debugging.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Bag is an ordered set of named attributes.
// Values are strings, numbers, bools, nil, lists or nested *Bag values.
type Bag struct {
	names []string
	attrs map[string]any
}

func newBag(capacity int) *Bag {
	return &Bag{
		names: make([]string, 0, capacity),
		attrs: make(map[string]any, capacity),
	}
}

// set assigns v to name. A repeated name keeps its first position.
func (b *Bag) set(name string, v any) {
	if _, ok := b.attrs[name]; !ok {
		b.names = append(b.names, name)
	}

	b.attrs[name] = v
}

// Get returns the value of the named attribute.
func (b *Bag) Get(name string) (any, bool) {
	if b == nil {
		return nil, false
	}

	v, ok := b.attrs[name]

	return v, ok
}

// Has reports whether the bag carries the named attribute.
func (b *Bag) Has(name string) bool {
	_, ok := b.Get(name)
	return ok
}

// Len returns the number of attributes.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}

	return len(b.names)
}

// Keys returns the attribute names in projection order.
func (b *Bag) Keys() []string {
	if b == nil {
		return nil
	}

	return slices.Clone(b.names)
}

// All iterates over attributes in projection order.
func (b *Bag) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if b == nil {
			return
		}

		for _, name := range b.names {
			if !yield(name, b.attrs[name]) {
				return
			}
		}
	}
}

// Bag returns the named attribute when it holds a nested bag.
func (b *Bag) Bag(name string) (*Bag, bool) {
	v, ok := b.Get(name)
	if !ok {
		return nil, false
	}

	nested, ok := v.(*Bag)

	return nested, ok
}

// String returns the named attribute when it holds a string.
func (b *Bag) String(name string) (string, bool) {
	v, ok := b.Get(name)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// Lookup resolves a dotted path such as "location.city" through nested bags.
func (b *Bag) Lookup(path string) (any, bool) {
	names, err := ParsePath(path)
	if err != nil {
		return nil, false
	}

	cur := b

	for i, name := range names {
		v, ok := cur.Get(name)
		if !ok {
			return nil, false
		}

		if i == len(names)-1 {
			return v, true
		}

		cur, ok = v.(*Bag)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}

// Dump returns a human readable dump of the bag and everything below it.
func (b *Bag) Dump() string {
	return dumper.Sdump(b.dumpable())
}

// dumpable mirrors the bag as plain maps so the dump shows attribute names
// instead of the internal layout.
func (b *Bag) dumpable() map[string]any {
	out := make(map[string]any, b.Len())

	for name, v := range b.All() {
		if nested, ok := v.(*Bag); ok {
			out[name] = nested.dumpable()
			continue
		}

		out[name] = v
	}

	return out
}
