// Package interpreter walks the tagged tree produced by the grammar
// package and resolves it, against a reference day and a direction, into a
// Tempus.
//
// The walk is a small state machine: terminal tags resolve and return
// immediately, non-terminal tags mutate a running {future, amount} state
// and continue, and context-closing tags consume that state to produce the
// final result. There is no recursion and no backtracking — the grammar
// has already committed to exactly one alternative by the time Interpret
// runs.
package interpreter
