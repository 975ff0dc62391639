// Package attr projects nested mappings into attribute bags.
//
// A Bag is an ordered set of named attributes whose names come from the
// input data rather than a static schema. Nested mappings are projected
// recursively into nested bags, so callers walk the result as an object
// graph instead of a tree of maps.
//
// # Projection rules
//
//   - Every key becomes one attribute.
//   - Mapping values become nested *Bag values.
//   - Any other value (string, number, bool, nil, list) is stored as is.
//   - Keys that are reserved words get a trailing underscore ("class" -> "class_").
//
// No validation happens here. Typed records (see package advert) layer
// their own rules on top of a Bag.
//
// # Ordering
//
// Project sorts keys because Go maps carry no order. ProjectNode keeps the
// order in which keys appear in the YAML/JSON document.
//
// # Paths
//
// Lookup accepts dotted paths ("location.city") to reach into nested bags.
package attr
