// Package advert implements the classified-ad record.
//
// An Advert is an attribute bag (see package attr) with two rules on top:
// the "title" key is required and "price" is a non-negative number that
// defaults to 0. Price is only ever written through SetPrice, both at
// construction and afterwards, so a stored price is always valid.
//
// The String method renders "<title> | <price> <currency>" in the advert's
// terminal color (see package colorize).
package advert
