// Package grammar recognizes the date-expression surface timewarp accepts
// and emits a tagged token tree for the interpreter package to walk.
//
// The grammar is declarative in spirit — an ordered list of alternatives,
// tried top to bottom, with the first match winning — but hand-written as
// Go regular expressions rather than generated from a PEG file. Date
// literals are tried before natural-language phrases so that e.g.
// "3/16/2023" is never mistaken for a word phrase.
package grammar
