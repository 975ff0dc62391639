// Package match finds attribute names that look like a wanted one.
//
// It is used to hint at typos in input documents, e.g. a record carrying
// "Title" or "tittle" instead of the required "title".
//
// Key functions:
//   - NormalizeKey: folds case and strips separators
//   - Levenshtein: computes edit distance between strings (rune based)
//   - Similarity: normalized similarity score in [0, 1]
//   - Suggest: picks the closest candidate above MinSimilarity
package match
