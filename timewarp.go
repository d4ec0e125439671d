// Package timewarp parses short, human-authored English and German date
// expressions into a normalized calendar day or week-long interval.
//
// This package is the recommended entry point for most users. It provides
// the single high-level Resolve function while re-exporting the value
// types most callers need, so day-to-day use requires only one import.
//
// # Quick Start
//
// Resolve a relative expression against a reference day:
//
//	ref := timewarp.Today()
//	tempus, err := timewarp.Resolve(ref, timewarp.To, "last monday")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tempus.Start())
//
// # Power Users
//
// For direct access to the calendar kernel, the grammar's tagged parse
// tree, or the interpreter's state machine, import the underlying
// packages directly:
//
//   - github.com/cacack/timewarp/doy - Doy/Tempus value types, ISO parsing and formatting
//   - github.com/cacack/timewarp/grammar - the expression grammar and its Node tree
//   - github.com/cacack/timewarp/interpreter - the tree-walking interpreter
package timewarp

import (
	"github.com/cacack/timewarp/doy"
	"github.com/cacack/timewarp/grammar"
	"github.com/cacack/timewarp/interpreter"
)

// Type re-exports for single-import convenience.
type (
	// Day is a calendar day: a proleptic-Gregorian year plus a 1-based
	// day-of-year ordinal.
	Day = doy.Doy

	// Tempus is a resolved expression's result: either a single day
	// (Moment) or a half-open day range (Interval).
	Tempus = doy.Tempus

	// Weekday names a day of the week, Sun=0..Sat=6.
	Weekday = doy.Weekday

	// Month names a month of the year, Jan=1..Dec=12.
	Month = doy.Month

	// Direction is the caller's hint about whether a resolved expression
	// denotes the start or the end of a time range.
	Direction = interpreter.Direction
)

// Direction constants for convenience.
const (
	// From denotes the start of a range.
	From Direction = interpreter.From

	// To denotes the end of a range.
	To Direction = interpreter.To
)

// Today returns the calendar day for the current wall-clock date. It is
// the only operation in this package that touches the clock.
func Today() Day {
	return doy.Today()
}

// Resolve parses text against reference and direction, and returns the
// Tempus it denotes. text may be a date literal (in any of the forms
// listed in the grammar package), one of the three bare adverbs
// (today/heute, yesterday/gestern, tomorrow/morgen), a modifier plus a
// weekday or month name, or a signed integer plus a time unit.
//
// The only error this returns is a recoverable parse/resolve failure; a
// contract violation in the calendar kernel (an out-of-range month passed
// to a caller-supplied Day) panics instead, since that indicates a bug in
// the caller rather than bad input text.
func Resolve(reference Day, direction Direction, text string) (Tempus, error) {
	root, err := grammar.Parse(text)
	if err != nil {
		return Tempus{}, err
	}
	return interpreter.Interpret(root, reference, direction)
}

// ParseDay parses an ISO-8601 day, accepting either "YYYY-MM-DD" or
// "YYYYMMDD". It is a thin convenience wrapper around doy.ParseISO for
// callers who don't need the full doy package.
func ParseDay(s string) (Day, error) {
	return doy.ParseISO(s)
}
