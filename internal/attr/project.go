package attr

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// mergeTag marks a YAML merge key ("<<").
const mergeTag = "!!merge"

// Project converts a mapping into a Bag, projecting nested mappings into
// nested bags. Keys are visited in sorted order.
func Project(m map[string]any) *Bag {
	b := newBag(len(m))

	for _, key := range slices.Sorted(maps.Keys(m)) {
		b.set(Ident(key), projectValue(m[key]))
	}

	return b
}

// projectValue converts one mapping value. Lists are copied so the bag does
// not share backing storage with the input.
func projectValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return Project(tv)
	case map[any]any:
		return Project(stringKeys(tv))
	case map[string]string:
		m := make(map[string]any, len(tv))
		for k, s := range tv {
			m[k] = s
		}

		return Project(m)
	case []any:
		return slices.Clone(tv)
	default:
		return v
	}
}

// stringKeys normalizes a map with arbitrary keys, as produced by some
// YAML decoders, into a string keyed map.
func stringKeys(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}

	return out
}

// ProjectNode converts a YAML or JSON mapping node into a Bag, keeping the
// key order of the document. Document nodes are unwrapped and aliases are
// followed.
func ProjectNode(n *yaml.Node) (*Bag, error) {
	n = unwrap(n)
	if n == nil {
		return nil, errors.New("empty document")
	}

	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping, got %s", n.Line, n.ShortTag())
	}

	b := newBag(len(n.Content) / 2)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		if key.ShortTag() == mergeTag {
			err := mergeInto(b, val)
			if err != nil {
				return nil, err
			}

			continue
		}

		var name string

		err := key.Decode(&name)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid key: %w", key.Line, err)
		}

		v, err := nodeValue(val)
		if err != nil {
			return nil, err
		}

		b.set(Ident(name), v)
	}

	return b, nil
}

// nodeValue converts a value node: mappings become bags, everything else is
// decoded into its natural Go value.
func nodeValue(n *yaml.Node) (any, error) {
	n = unwrap(n)
	if n == nil {
		return nil, nil
	}

	if n.Kind == yaml.MappingNode {
		return ProjectNode(n)
	}

	var v any

	err := n.Decode(&v)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}

	return v, nil
}

// mergeInto applies a YAML merge value. Keys already present win, and keys
// written later in the mapping overwrite merged ones.
func mergeInto(b *Bag, n *yaml.Node) error {
	n = unwrap(n)
	if n == nil {
		return nil
	}

	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}

	for _, src := range sources {
		merged, err := ProjectNode(src)
		if err != nil {
			return fmt.Errorf("merge: %w", err)
		}

		for name, v := range merged.All() {
			if !b.Has(name) {
				b.set(name, v)
			}
		}
	}

	return nil
}

func unwrap(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}

			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		case 0:
			return nil
		default:
			return n
		}
	}

	return nil
}
