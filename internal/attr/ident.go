package attr

import "go/token"

// ReservedSuffix is appended to keys that collide with a reserved word.
const ReservedSuffix = "_"

// scriptKeywords are reserved in the scripting languages that commonly
// produce advert documents. Go keywords are checked through go/token.
var scriptKeywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {},
	"and": {}, "as": {}, "assert": {}, "async": {}, "await": {},
	"class": {}, "def": {}, "del": {}, "elif": {}, "except": {},
	"finally": {}, "from": {}, "global": {}, "in": {}, "is": {},
	"lambda": {}, "nonlocal": {}, "not": {}, "or": {}, "pass": {},
	"raise": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

// IsReserved reports whether key cannot be used as a plain attribute name.
func IsReserved(key string) bool {
	if token.IsKeyword(key) {
		return true
	}

	_, ok := scriptKeywords[key]

	return ok
}

// Ident returns the attribute name for a source key.
func Ident(key string) string {
	if IsReserved(key) {
		return key + ReservedSuffix
	}

	return key
}
