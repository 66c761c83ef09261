// Package match provides name normalization and Levenshtein similarity used to
// suggest corrections for misspelled route attributes and config values.
//
// Key functions:
//   - NormalizeIdent: folds case and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidates close to a misspelled name
package match
