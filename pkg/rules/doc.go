// Package rules defines exclusion rules and how they select directories.
//
// A Rule {Name, Base} means "every directory named Name anywhere under Base".
// Its match pattern is the glob Base + "/**/" + Name, compiled once into a
// Pattern and used in both directions:
//
//   - forward, by Scanner, to decide which visited directories match
//   - in reverse, by the reconciliation engine, to pick the exclusion
//     entries that belong to a rule
//
// # Glob Syntax
//
//   - `**/` zero or more whole directories
//   - `**` any run of characters, including separators
//   - `*` any run of characters except `/`
//   - `?` one character except `/`
//   - `[abc]`, `[!abc]` character classes
//   - `{a,b}` alternation
//   - `\x` the literal character x
//
// Matching is exact and case-sensitive. Paths are never cleaned, resolved
// through symlinks, or stripped of trailing separators before matching.
package rules
