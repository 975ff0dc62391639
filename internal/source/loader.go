// Package source reads advert documents from JSON or YAML.
//
// JSON is decoded through the YAML parser, which keeps the key order of the
// document all the way into the projected bags.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"advert/internal/attr"
)

// LoadFile loads every record from the JSON or YAML file at path.
func LoadFile(path string) ([]*attr.Bag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read advert file %s: %w", path, err)
	}

	bags, err := ParseAll(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return bags, nil
}

// Parse parses a single mapping document.
func Parse(data []byte) (*attr.Bag, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse advert document: %w", err)
	}

	return attr.ProjectNode(&doc)
}

// ParseAll parses every record in data. A document may hold one mapping or
// a sequence of mappings, and YAML streams may hold several documents.
func ParseAll(data []byte) ([]*attr.Bag, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var bags []*attr.Bag

	for i := 0; ; i++ {
		var doc yaml.Node

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse advert document %d: %w", i, err)
		}

		docBags, err := records(&doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}

		bags = append(bags, docBags...)
	}

	return bags, nil
}

// records projects the root of one document.
func records(doc *yaml.Node) ([]*attr.Bag, error) {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}

	if root.Kind != yaml.SequenceNode {
		b, err := attr.ProjectNode(root)
		if err != nil {
			return nil, err
		}

		return []*attr.Bag{b}, nil
	}

	bags := make([]*attr.Bag, 0, len(root.Content))

	for i, item := range root.Content {
		b, err := attr.ProjectNode(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		bags = append(bags, b)
	}

	return bags, nil
}
